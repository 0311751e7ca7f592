package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"

	"vidvault/internal/application/usecase"
	"vidvault/internal/domain/dto"
	"vidvault/internal/infrastructure/blobfs"
	"vidvault/internal/infrastructure/metadata"
	"vidvault/internal/infrastructure/session"
	"vidvault/internal/infrastructure/userstore"
	"vidvault/internal/presentation"
	"vidvault/internal/presentation/middleware"
)

// mp4Head is a minimal ftyp box so MIME sniffing sees real mp4 content.
var mp4Head = []byte("\x00\x00\x00\x18ftypmp42")

// newTestApp wires the full HTTP surface against temp-dir backed stores,
// the same route table the run command builds.
func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	dir := t.TempDir()

	metaStore, err := metadata.NewFileStore(filepath.Join(dir, "videos.json"))
	require.NoError(t, err)

	blobStore, err := blobfs.NewStore(filepath.Join(dir, "blobs"))
	require.NoError(t, err)

	users, err := userstore.NewFileStore(filepath.Join(dir, "users.json"))
	require.NoError(t, err)

	sessions := session.NewMemoryStore(session.Config{TTLHours: 1})

	auth := usecase.NewAuthenticator(users, sessions)
	ingestor := usecase.NewIngestor(blobStore, blobStore, metaStore, 0)
	streamer := usecase.NewStreamer(metaStore, blobStore)
	cataloger := usecase.NewCataloger(metaStore, users)
	deleter := usecase.NewDeleter(metaStore, metaStore, blobStore)

	authHandler := NewAuthHandler(auth)
	uploadHandler := NewUploadHandler(ingestor)
	streamHandler := NewStreamHandler(streamer)
	listHandler := NewListHandler(cataloger)
	deleteHandler := NewDeleteHandler(deleter)

	e := echo.New()
	e.Use(echoMiddleware.Recover())

	e.POST("/api/register", authHandler.HandleRegister)
	e.POST("/api/login", authHandler.HandleLogin)
	e.POST("/api/logout", authHandler.HandleLogout)

	e.POST("/upload", uploadHandler.Handle, middleware.Auth(auth))
	e.GET("/videos/all", listHandler.Handle, middleware.OptionalAuth(auth))
	e.GET(fmt.Sprintf("/stream/:%s", presentation.VideoIDParam),
		streamHandler.Handle, middleware.Auth(auth))
	e.DELETE(fmt.Sprintf("/delete/:%s", presentation.VideoIDParam),
		deleteHandler.Handle, middleware.Auth(auth))

	return e
}

// registerAndLogin creates an account and returns its session cookie.
func registerAndLogin(t *testing.T, e *echo.Echo, username string) *http.Cookie {
	t.Helper()

	regBody, err := json.Marshal(dto.RegisterRequest{
		Name:     username,
		Email:    username + "@example.com",
		Username: username,
		Password: "secret123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(regBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	loginBody, err := json.Marshal(dto.LoginRequest{
		Username: username,
		Password: "secret123",
	})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(loginBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == presentation.SessionCookie && cookie.Value != "" {
			return cookie
		}
	}

	t.Fatalf("login did not set the %s cookie", presentation.SessionCookie)

	return nil
}

// uploadVideo posts content as a multipart upload and returns the new id.
func uploadVideo(t *testing.T, e *echo.Echo, cookie *http.Cookie,
	filename string, content []byte,
) string {
	t.Helper()

	rec := postUpload(t, e, cookie, filename, content)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["id"])

	return resp["id"]
}

func postUpload(t *testing.T, e *echo.Echo, cookie *http.Cookie,
	filename string, content []byte,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("video", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
