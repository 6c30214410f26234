package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chat-platform/internal/domain/chat"
	"chat-platform/internal/middleware"
	"chat-platform/internal/repository"
	"chat-platform/internal/services"
	"chat-platform/internal/transport/httpdto"
	apperrors "chat-platform/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type memChatRepo struct {
	chats map[uuid.UUID]chat.Chat
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{chats: make(map[uuid.UUID]chat.Chat)}
}

func (r *memChatRepo) Create(ctx context.Context, c *chat.Chat) error {
	r.chats[c.ID] = *c
	return nil
}

func (r *memChatRepo) GetByID(ctx context.Context, id uuid.UUID) (chat.Chat, error) {
	c, ok := r.chats[id]
	if !ok {
		return chat.Chat{}, apperrors.ErrNotFound
	}
	return c, nil
}

func (r *memChatRepo) GetAll(ctx context.Context) ([]chat.Chat, error) {
	out := make([]chat.Chat, 0, len(r.chats))
	for _, c := range r.chats {
		out = append(out, c)
	}
	return out, nil
}

func (r *memChatRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]chat.Chat, error) {
	var out []chat.Chat
	for _, c := range r.chats {
		if c.HasMember(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memChatRepo) ListTitles(ctx context.Context) ([]string, error) {
	titles := make([]string, 0, len(r.chats))
	for _, c := range r.chats {
		titles = append(titles, c.Title)
	}
	return titles, nil
}

func (r *memChatRepo) Update(ctx context.Context, c chat.Chat) error {
	if _, ok := r.chats[c.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.chats[c.ID] = c
	return nil
}

func (r *memChatRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.chats[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.chats, id)
	return nil
}

var _ repository.ChatRepository = (*memChatRepo)(nil)

// asUser injects an authenticated identity the way the auth middleware does.
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := services.WithUserContext(c.Request.Context(), userID, nil)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func newChatTestRouter(userID uuid.UUID) (*gin.Engine, *memChatRepo) {
	gin.SetMode(gin.TestMode)
	repo := newMemChatRepo()
	h := NewChatHandler(services.NewChatService(nil, repo))

	router := gin.New()
	router.Use(middleware.ErrorHandler(nil))
	router.Use(asUser(userID))

	chats := router.Group("/api/chats")
	{
		chats.GET("", h.List)
		chats.POST("", h.Create)
		chats.GET("/:id", h.GetByID)
		chats.PUT("/:id", h.Update)
		chats.DELETE("/:id", h.Remove)
		chats.POST("/:id/attach-user", h.AttachUser)
		chats.POST("/:id/detach-user", h.DetachUser)
	}
	return router, repo
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) httpdto.Response {
	t.Helper()
	var envelope httpdto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestChatEndpointsCreate(t *testing.T) {
	req := require.New(t)
	creator := uuid.New()
	router, repo := newChatTestRouter(creator)

	rec := doJSON(router, http.MethodPost, "/api/chats", httpdto.CreateChatRequest{Title: "General"})
	req.Equal(http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	req.True(envelope.IsSuccess)
	req.Equal("Chat created successfully", envelope.Message)
	req.Len(repo.chats, 1)

	rec = doJSON(router, http.MethodPost, "/api/chats", httpdto.CreateChatRequest{Title: "General"})
	req.Equal(http.StatusBadRequest, rec.Code)
	envelope = decodeEnvelope(t, rec)
	req.False(envelope.IsSuccess)
	req.Equal(`Chat "General" already exists`, envelope.Message)
}

func TestChatEndpointsUpdateForbidden(t *testing.T) {
	req := require.New(t)
	creator := uuid.New()
	outsider := uuid.New()

	router, repo := newChatTestRouter(creator)
	rec := doJSON(router, http.MethodPost, "/api/chats", httpdto.CreateChatRequest{Title: "Locked"})
	req.Equal(http.StatusOK, rec.Code)

	var chatID uuid.UUID
	for id := range repo.chats {
		chatID = id
	}

	outsiderRouter := gin.New()
	outsiderRouter.Use(middleware.ErrorHandler(nil))
	outsiderRouter.Use(asUser(outsider))
	h := NewChatHandler(services.NewChatService(nil, repo))
	outsiderRouter.PUT("/api/chats/:id", h.Update)

	rec = doJSON(outsiderRouter, http.MethodPut, fmt.Sprintf("/api/chats/%s", chatID),
		httpdto.UpdateChatRequest{Title: "Stolen"})
	req.Equal(http.StatusForbidden, rec.Code)
	req.Equal("You can't update this chat", decodeEnvelope(t, rec).Message)
}

func TestChatEndpointsAttachDetach(t *testing.T) {
	req := require.New(t)
	creator := uuid.New()
	member := uuid.New()
	router, repo := newChatTestRouter(creator)

	rec := doJSON(router, http.MethodPost, "/api/chats", httpdto.CreateChatRequest{Title: "Room"})
	req.Equal(http.StatusOK, rec.Code)

	var chatID uuid.UUID
	for id := range repo.chats {
		chatID = id
	}

	rec = doJSON(router, http.MethodPost, fmt.Sprintf("/api/chats/%s/attach-user", chatID),
		httpdto.AttachDetachRequest{UserID: member})
	req.Equal(http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodPost, fmt.Sprintf("/api/chats/%s/attach-user", chatID),
		httpdto.AttachDetachRequest{UserID: member})
	req.Equal(http.StatusBadRequest, rec.Code)
	req.Equal("User already attached to chat", decodeEnvelope(t, rec).Message)

	rec = doJSON(router, http.MethodPost, fmt.Sprintf("/api/chats/%s/detach-user", chatID),
		httpdto.AttachDetachRequest{UserID: member})
	req.Equal(http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodPost, fmt.Sprintf("/api/chats/%s/detach-user", chatID),
		httpdto.AttachDetachRequest{UserID: member})
	req.Equal(http.StatusBadRequest, rec.Code)
	req.Equal("This user hadn't been attached to chat", decodeEnvelope(t, rec).Message)

	rec = doJSON(router, http.MethodPost, fmt.Sprintf("/api/chats/%s/detach-user", chatID),
		httpdto.AttachDetachRequest{UserID: creator})
	req.Equal(http.StatusForbidden, rec.Code)
	req.Equal("You can't detach yourself from chat", decodeEnvelope(t, rec).Message)
}

func TestChatEndpointsDelete(t *testing.T) {
	req := require.New(t)
	creator := uuid.New()
	router, repo := newChatTestRouter(creator)

	rec := doJSON(router, http.MethodPost, "/api/chats", httpdto.CreateChatRequest{Title: "Temp"})
	req.Equal(http.StatusOK, rec.Code)

	var chatID uuid.UUID
	for id := range repo.chats {
		chatID = id
	}

	rec = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/chats/%s", chatID), nil)
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("Chat deleted successfully", decodeEnvelope(t, rec).Message)

	rec = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/chats/%s", chatID), nil)
	req.Equal(http.StatusNotFound, rec.Code)
	req.Equal("Chat not found", decodeEnvelope(t, rec).Message)
}
