package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/repository/mocks"
	"github.com/lumeo-app/lumeo-backend/internal/usecase/message"
)

func setupMessageTest(userID int) (*gin.Engine, *mocks.MatchRepository, *mocks.MessageRepository) {
	gin.SetMode(gin.TestMode)

	matchRepo := new(mocks.MatchRepository)
	messageRepo := new(mocks.MessageRepository)
	h := NewMessageHandler(message.NewMessageUseCase(matchRepo, messageRepo))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.POST("/messages", h.SendMessage)
	router.POST("/matches/:match_id/read", h.MarkRead)

	return router, matchRepo, messageRepo
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendMessageCreated(t *testing.T) {
	router, matchRepo, messageRepo := setupMessageTest(1)

	matchRepo.On("GetByID", mock.Anything, 10).
		Return(&domain.Match{ID: 10, UserAID: 1, UserBID: 2, IsActive: true}, nil)
	messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).
		Run(func(args mock.Arguments) {
			m := args.Get(1).(*domain.Message)
			m.ID = 77
			m.CreatedAt = time.Now()
		}).
		Return(nil)

	w := postJSON(router, "/messages", gin.H{"match_id": 10, "content": "hello"})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["receiver_id"])
	assert.Equal(t, "me", resp["from"])
}

func TestSendMessageForbiddenForNonMember(t *testing.T) {
	router, matchRepo, messageRepo := setupMessageTest(99)

	matchRepo.On("GetByID", mock.Anything, 10).
		Return(&domain.Match{ID: 10, UserAID: 1, UserBID: 2, IsActive: true}, nil)

	w := postJSON(router, "/messages", gin.H{"match_id": 10, "content": "hello"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendMessageMatchNotFound(t *testing.T) {
	router, matchRepo, _ := setupMessageTest(1)

	matchRepo.On("GetByID", mock.Anything, 404).Return(nil, domain.ErrMatchNotFound)

	w := postJSON(router, "/messages", gin.H{"match_id": 404, "content": "hello"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendMessageBadBody(t *testing.T) {
	router, _, _ := setupMessageTest(1)

	w := postJSON(router, "/messages", gin.H{"content": "hello"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkReadOK(t *testing.T) {
	router, matchRepo, messageRepo := setupMessageTest(2)

	matchRepo.On("GetByID", mock.Anything, 10).
		Return(&domain.Match{ID: 10, UserAID: 1, UserBID: 2, IsActive: true}, nil)
	messageRepo.On("MarkRead", mock.Anything, 10, 2).Return(int64(2), nil)

	w := postJSON(router, "/matches/10/read", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkReadInvalidMatchID(t *testing.T) {
	router, _, _ := setupMessageTest(2)

	w := postJSON(router, "/matches/abc/read", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
