package routes_test

import (
	"net/http"
	"testing"
	"time"

	"brain-backend/internal/api/routes"
	"brain-backend/internal/config"
	"brain-backend/internal/repository"
	"brain-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:      "test",
		StorageDriver:    "memory",
		JWTSecret:        "test-secret",
		JWTTTL:           time.Hour,
		JWTIssuer:        "brain-backend",
		BcryptCost:       4,
		ShareTokenLength: config.MinShareTokenLength,
		AllowedOrigins:   []string{"http://localhost:5173"},
	}
}

type contentBody struct {
	ID     string   `json:"id"`
	UserID string   `json:"userId"`
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	Link   string   `json:"link"`
	Body   string   `json:"content"`
	Tags   []string `json:"tags"`
}

type RouterTestSuite struct {
	suite.Suite
	http *testutils.HTTPTestSuite
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	router, err := routes.SetupRoutes(testConfig(), routes.MemoryDependencies(repository.NewMemoryStore()))
	suite.Require().NoError(err)
	suite.http = testutils.NewHTTPTestSuite(router)
}

func (suite *RouterTestSuite) signup(username, password string) {
	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/signup", map[string]string{"username": username, "password": password})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *RouterTestSuite) signin(username, password string) string {
	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/signin", map[string]string{"username": username, "password": password})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	testutils.ParseJSONResponse(suite.T(), w, &resp)
	suite.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (suite *RouterTestSuite) newUser(username string) string {
	suite.signup(username, "pw-"+username)
	return suite.signin(username, "pw-"+username)
}

func (suite *RouterTestSuite) createContent(token string, body map[string]interface{}) contentBody {
	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/content", body, token)
	var resp struct {
		Message string      `json:"message"`
		Content contentBody `json:"content"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal("Content added successfully", resp.Message)
	return resp.Content
}

func (suite *RouterTestSuite) listContent(token, query string) []contentBody {
	w := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/v1/content"+query, nil, token)
	var resp struct {
		Content []contentBody `json:"content"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.NotNil(resp.Content)
	return resp.Content
}

func (suite *RouterTestSuite) TestShareLifecycle() {
	token := suite.newUser("alice")

	item := suite.createContent(token, map[string]interface{}{
		"type":  "link",
		"link":  "https://go.dev",
		"title": "Go",
		"tags":  []string{" a ", "", "b"},
	})
	suite.Equal([]string{"a", "b"}, item.Tags)

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/brain/share", map[string]bool{"share": true}, token)
	var link struct {
		Hash string `json:"hash"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &link)
	suite.Len(link.Hash, config.MinShareTokenLength)

	// enabling again keeps the token
	w = suite.http.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/brain/share", map[string]bool{"share": true}, token)
	var again struct {
		Hash string `json:"hash"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &again)
	suite.Equal(link.Hash, again.Hash)

	w = suite.http.MakeRequest(http.MethodGet, "/api/v1/brain/"+link.Hash, nil)
	var shared struct {
		Username string        `json:"username"`
		Content  []contentBody `json:"content"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &shared)
	suite.Equal("alice", shared.Username)
	suite.Require().Len(shared.Content, 1)
	suite.Equal(item.ID, shared.Content[0].ID)

	w = suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/v1/brain/share", nil, token)
	suite.JSONEq(`{"shared":true,"hash":"`+link.Hash+`"}`, w.Body.String())

	for i := 0; i < 2; i++ {
		w = suite.http.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/brain/share", map[string]bool{"share": false}, token)
		suite.Equal(http.StatusOK, w.Code)
		suite.JSONEq(`{"message":"Removed link"}`, w.Body.String())
	}

	w = suite.http.MakeRequest(http.MethodGet, "/api/v1/brain/"+link.Hash, nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "Share link not found or has expired")
}

func (suite *RouterTestSuite) TestSharedViewIsLive() {
	token := suite.newUser("alice")

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/brain/share", map[string]bool{"share": true}, token)
	var link struct {
		Hash string `json:"hash"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &link)

	suite.createContent(token, map[string]interface{}{"type": "tweet", "link": "https://x.com/1", "title": "later", "tags": []string{"x"}})
	suite.createContent(token, map[string]interface{}{"type": "document", "title": "notes", "content": "# hi"})

	w = suite.http.MakeRequest(http.MethodGet, "/api/v1/brain/"+link.Hash+"?type=document", nil)
	var shared struct {
		Content []contentBody `json:"content"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &shared)
	suite.Require().Len(shared.Content, 1)
	suite.Equal("notes", shared.Content[0].Title)
	suite.Equal("# hi", shared.Content[0].Body)
	suite.NotNil(shared.Content[0].Tags)
}

func (suite *RouterTestSuite) TestUnknownShareToken() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/brain/Zz9Zz9Zz9Z", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "Share link not found")
}

func (suite *RouterTestSuite) TestContentIsolation() {
	alice := suite.newUser("alice")
	bob := suite.newUser("bob")

	item := suite.createContent(alice, map[string]interface{}{"type": "youtube", "link": "https://youtu.be/x", "title": "talk"})

	suite.Empty(suite.listContent(bob, ""))
	suite.Len(suite.listContent(alice, ""), 1)

	w := suite.http.MakeAuthenticatedRequest(http.MethodPut, "/api/v1/content", map[string]interface{}{
		"contentId": item.ID, "type": "youtube", "link": "https://youtu.be/y", "title": "stolen",
	}, bob)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "Content not found")

	w = suite.http.MakeAuthenticatedRequest(http.MethodDelete, "/api/v1/content", map[string]string{"contentId": item.ID}, bob)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "Content not found")

	items := suite.listContent(alice, "")
	suite.Require().Len(items, 1)
	suite.Equal("talk", items[0].Title)
}

func (suite *RouterTestSuite) TestUpdateAndDelete() {
	token := suite.newUser("alice")
	item := suite.createContent(token, map[string]interface{}{"type": "link", "link": "https://a", "title": "old", "tags": []string{"t"}})

	w := suite.http.MakeAuthenticatedRequest(http.MethodPut, "/api/v1/content", map[string]interface{}{
		"contentId": item.ID, "type": "document", "title": "new", "content": "body", "link": "https://ignored",
	}, token)
	var updated struct {
		Content contentBody `json:"content"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &updated)
	suite.Equal(item.ID, updated.Content.ID)
	suite.Equal("document", updated.Content.Type)
	suite.Empty(updated.Content.Link)
	suite.Empty(updated.Content.Tags)

	w = suite.http.MakeAuthenticatedRequest(http.MethodDelete, "/api/v1/content", map[string]string{"contentId": item.ID}, token)
	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(suite.listContent(token, ""))

	w = suite.http.MakeAuthenticatedRequest(http.MethodDelete, "/api/v1/content", map[string]string{"contentId": item.ID}, token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestFiltersAndTags() {
	token := suite.newUser("alice")
	suite.createContent(token, map[string]interface{}{"type": "link", "link": "https://a", "title": "Learning Go", "tags": []string{"go", "lang"}})
	suite.createContent(token, map[string]interface{}{"type": "tweet", "link": "https://b", "title": "rust thread", "tags": []string{"rust"}})

	suite.Len(suite.listContent(token, "?search=GO"), 1)
	suite.Len(suite.listContent(token, "?tags=rust,lang"), 2)
	suite.Len(suite.listContent(token, "?type=tweet"), 1)
	suite.Empty(suite.listContent(token, "?search=go&type=tweet"))

	w := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/api/v1/content/tags", nil, token)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"tags":["go","lang","rust"]}`, w.Body.String())
}

func (suite *RouterTestSuite) TestDocumentRequiresBody() {
	token := suite.newUser("alice")

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/content", map[string]interface{}{
		"type": "document", "title": "empty", "content": "",
	}, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.http.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/content", map[string]interface{}{
		"type": "link", "title": "",
	}, token)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Title and type are required fields")
}

func (suite *RouterTestSuite) TestSignupAndSigninErrors() {
	suite.signup("alice", "secret")

	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/signup", map[string]string{"username": "alice", "password": "other"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "User already exists")

	w = suite.http.MakeRequest(http.MethodPost, "/api/v1/signup", map[string]string{"username": "bob"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.http.MakeRequest(http.MethodPost, "/api/v1/signin", map[string]string{"username": "nobody", "password": "x"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "User not found")

	w = suite.http.MakeRequest(http.MethodPost, "/api/v1/signin", map[string]string{"username": "alice", "password": "wrong"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "Incorrect password")
}

func (suite *RouterTestSuite) TestProtectedRoutesRequireBearer() {
	protected := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/content"},
		{http.MethodGet, "/api/v1/content"},
		{http.MethodGet, "/api/v1/content/tags"},
		{http.MethodPut, "/api/v1/content"},
		{http.MethodDelete, "/api/v1/content"},
		{http.MethodPost, "/api/v1/brain/share"},
		{http.MethodGet, "/api/v1/brain/share"},
		{http.MethodPost, "/api/v1/auth/validate"},
	}

	var cases []testutils.HTTPTestCase
	for _, route := range protected {
		cases = append(cases,
			testutils.HTTPTestCase{
				Name:             route.method + " " + route.path + " without token",
				Request:          testutils.MockHTTPRequest{Method: route.method, URL: route.path},
				ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusUnauthorized, Body: map[string]string{"message": "Unauthorized"}},
			},
			testutils.HTTPTestCase{
				Name:             route.method + " " + route.path + " with garbage token",
				Request:          testutils.MockHTTPRequest{Method: route.method, URL: route.path, Headers: map[string]string{"Authorization": "Bearer not.a.jwt"}},
				ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusUnauthorized, Body: map[string]string{"message": "Invalid token"}},
			},
		)
	}
	suite.http.RunHTTPTestCases(suite.T(), cases)
}

func (suite *RouterTestSuite) TestValidateToken() {
	token := suite.newUser("alice")

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/api/v1/auth/validate", nil, token)
	var resp struct {
		Valid  bool                   `json:"valid"`
		Claims map[string]interface{} `json:"claims"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.True(resp.Valid)
	suite.Equal("alice", resp.Claims["username"])
}

func (suite *RouterTestSuite) TestAmbientRoutes() {
	w := suite.http.MakeRequest(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.http.MakeRequest(http.MethodGet, "/nope", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "Endpoint not found")
	suite.NotEmpty(w.Header().Get("X-Request-ID"))
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func TestSetupRoutes_RejectsMissingSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""
	_, err := routes.SetupRoutes(cfg, routes.MemoryDependencies(repository.NewMemoryStore()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth")
}
