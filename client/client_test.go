package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/amparo-care/amparo/client"
	"github.com/amparo-care/amparo/config"
	"github.com/amparo-care/amparo/errors"
)

type staticTokens string

func (s staticTokens) SessionToken() string {
	return string(s)
}

var _ = Describe("Client", func() {
	var server *httptest.Server
	var received *http.Request
	var receivedBody []byte
	var respond func(w http.ResponseWriter)

	newClient := func(token string) *client.Client {
		cfg := &config.Config{ApiUrl: server.URL + "/"}
		return client.NewClient(cfg, staticTokens(token), zap.NewNop().Sugar())
	}

	BeforeEach(func() {
		respond = func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r
			receivedBody, _ = io.ReadAll(r.Body)
			respond(w)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	It("joins the base url and resource path", func() {
		err := newClient("").Get(context.Background(), "/visitas", &map[string]interface{}{})
		Expect(err).ToNot(HaveOccurred())
		Expect(received.Method).To(Equal(http.MethodGet))
		Expect(received.URL.Path).To(Equal("/visitas"))
	})

	It("sends a fresh request id with every request", func() {
		err := newClient("").Get(context.Background(), "/visitas", nil)
		Expect(err).ToNot(HaveOccurred())
		first := received.Header.Get("X-Request-Id")
		Expect(uuid.Validate(first)).To(Succeed())

		err = newClient("").Get(context.Background(), "/visitas", nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(received.Header.Get("X-Request-Id")).ToNot(Equal(first))
	})

	It("attaches the bearer token when one is available", func() {
		err := newClient("session-token").Get(context.Background(), "/visitas", nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(received.Header.Get("Authorization")).To(Equal("Bearer session-token"))
	})

	It("leaves unauthenticated requests without an authorization header", func() {
		err := newClient("").Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.c"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(received.Header.Get("Authorization")).To(BeEmpty())
	})

	It("encodes request bodies as json", func() {
		err := newClient("t").Post(context.Background(), "/visitas", map[string]string{"localVisita": "Centro"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(received.Header.Get("Content-Type")).To(Equal("application/json"))

		var body map[string]string
		Expect(json.Unmarshal(receivedBody, &body)).To(Succeed())
		Expect(body).To(HaveKeyWithValue("localVisita", "Centro"))
	})

	It("omits the content type when there is no body", func() {
		err := newClient("t").Get(context.Background(), "/visitas", nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(received.Header.Get("Content-Type")).To(BeEmpty())
	})

	It("decodes the response into the output value", func() {
		respond = func(w http.ResponseWriter) {
			_, _ = w.Write([]byte(`{"id": "v1"}`))
		}
		var out struct {
			ID string `json:"id"`
		}
		err := newClient("t").Get(context.Background(), "/visitas/v1", &out)
		Expect(err).ToNot(HaveOccurred())
		Expect(out.ID).To(Equal("v1"))
	})

	It("maps status codes to error sentinels", func() {
		respond = func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusNotFound)
		}
		err := newClient("t").Get(context.Background(), "/idosos/missing", nil)
		Expect(err).To(MatchError(errors.NotFound))

		respond = func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusUnauthorized)
		}
		err = newClient("t").Get(context.Background(), "/visitas", nil)
		Expect(err).To(MatchError(errors.Unauthorized))
	})

	It("carries the backend message on errors when present", func() {
		respond = func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message": "email já cadastrado"}`))
		}
		err := newClient("t").Post(context.Background(), "/auth/register", map[string]string{}, nil)
		Expect(err).To(MatchError(errors.BadRequest))
		Expect(err.Error()).To(ContainSubstring("email já cadastrado"))
	})

	It("sends deletes without expecting a response body", func() {
		respond = func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusNoContent)
		}
		err := newClient("t").Delete(context.Background(), "/medicacoes/m1")
		Expect(err).ToNot(HaveOccurred())
		Expect(received.Method).To(Equal(http.MethodDelete))
	})
})
