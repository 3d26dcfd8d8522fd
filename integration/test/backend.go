package test

// An in-memory rendition of the backend, used by the integration suite. Every
// request is validated against the embedded OpenAPI contract before it is
// dispatched, so a green suite also proves the client never drifts off the
// documented wire format.

import (
	"context"
	_ "embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/brpaz/echozap"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/amparo-care/amparo/conditions"
	"github.com/amparo-care/amparo/elders"
	"github.com/amparo-care/amparo/medications"
	"github.com/amparo-care/amparo/notifications"
	"github.com/amparo-care/amparo/tasks"
	"github.com/amparo-care/amparo/users"
)

//go:embed openapi.yaml
var contract []byte

const signingSecret = "integration-suite-secret"

type account struct {
	password string
	user     users.User
}

type errorBody struct {
	Message string `json:"message"`
}

type Backend struct {
	server *httptest.Server
	router routers.Router

	mu            sync.Mutex
	accounts      map[string]account
	users         []users.User
	elders        []elders.Elder
	visits        []map[string]interface{}
	tasks         []tasks.Task
	medications   []medications.Medication
	conditions    []conditions.Condition
	notifications []notifications.Notification
}

func NewBackend(logger *zap.Logger) (*Backend, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(contract)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	b := &Backend{
		router:   router,
		accounts: map[string]account{},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echozap.ZapLogger(logger))
	e.Use(b.validateContract)
	e.Use(b.authenticate)
	b.register(e)

	b.server = httptest.NewServer(e)
	return b, nil
}

func (b *Backend) URL() string {
	return b.server.URL
}

func (b *Backend) Close() {
	b.server.Close()
}

// TokenFor mints a token the authentication middleware accepts, so tests can
// act as a user without going through the login flow.
func (b *Backend) TokenFor(user users.User, expiresAt time.Time) string {
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingSecret))
	if err != nil {
		panic(err)
	}
	return token
}

func (b *Backend) SeedAccount(user users.User, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[user.Email] = account{password: password, user: user}
	b.users = append(b.users, user)
}

func (b *Backend) SeedElder(elder elders.Elder) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.elders = append(b.elders, elder)
}

// SeedVisit takes the raw wire shape so suites can exercise both date
// serializations the production backend emits.
func (b *Backend) SeedVisit(visit map[string]interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visits = append(b.visits, visit)
}

func (b *Backend) SeedTask(task tasks.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append(b.tasks, task)
}

func (b *Backend) SeedMedication(medication medications.Medication) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.medications = append(b.medications, medication)
}

func (b *Backend) SeedNotification(notification notifications.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notifications = append(b.notifications, notification)
}

func (b *Backend) validateContract(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		route, pathParams, err := b.router.FindRoute(req)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		input := &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}
		if err := openapi3filter.ValidateRequest(context.Background(), input); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "off contract: "+err.Error())
		}
		return next(c)
	}
}

func (b *Backend) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if strings.HasPrefix(c.Request().URL.Path, "/auth/") {
			return next(c)
		}
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return c.JSON(http.StatusUnauthorized, errorBody{Message: "token ausente"})
		}
		_, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
			return []byte(signingSecret), nil
		})
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorBody{Message: "token inválido"})
		}
		return next(c)
	}
}

func (b *Backend) register(e *echo.Echo) {
	e.POST("/auth/login", b.login)
	e.POST("/auth/register", b.registerUser)

	e.GET("/usuarios", b.listUsers)

	e.GET("/idosos", b.listElders)
	e.POST("/idosos", b.createElder)
	e.PUT("/idosos/vincular", b.linkElder)
	e.PUT("/idosos/:id", b.updateElder)
	e.PATCH("/idosos/:id/foto-url", b.setElderPhotoUrl)
	e.GET("/idosos/responsavel/:id", b.listEldersByGuardian)
	e.GET("/idosos/cuidador/:id", b.listEldersByCaregiver)

	e.GET("/visitas", b.listVisits)
	e.POST("/visitas", b.createVisit)
	e.GET("/visitas/cuidador/:id", b.listVisitsByCaregiver)
	e.GET("/visitas/responsavel/:id", b.listVisitsByGuardian)

	e.POST("/tarefas", b.createTask)
	e.GET("/tarefas/idoso/:id", b.listTasksByElder)
	e.PUT("/tarefas/:id", b.setTaskStatus)

	e.POST("/medicacoes", b.createMedication)
	e.GET("/medicacoes/idoso/:id", b.listMedicationsByElder)
	e.DELETE("/medicacoes/:id", b.deleteMedication)

	e.GET("/condicoesSaude", b.listConditions)
	e.POST("/condicoesSaude", b.createCondition)

	e.GET("/notificacoes/usuario/:id", b.listNotificationsByUser)
	e.PUT("/notificacoes/:id", b.setNotificationRead)
}

func (b *Backend) login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if err := c.Bind(&body); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	found, ok := b.accounts[body.Email]
	if !ok || found.password != body.Password {
		return c.JSON(http.StatusUnauthorized, errorBody{Message: "credenciais inválidas"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":   b.TokenFor(found.user, time.Now().Add(time.Hour)),
		"usuario": found.user,
	})
}

func (b *Backend) registerUser(c echo.Context) error {
	var body struct {
		Name     string `json:"nome"`
		Email    string `json:"email"`
		Password string `json:"senha"`
		Role     string `json:"tipo"`
	}
	if err := c.Bind(&body); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.accounts[body.Email]; exists {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "email já cadastrado"})
	}
	user := users.User{
		ID:    uuid.NewString(),
		Name:  body.Name,
		Email: body.Email,
		Role:  body.Role,
	}
	b.accounts[body.Email] = account{password: body.Password, user: user}
	b.users = append(b.users, user)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"token":   b.TokenFor(user, time.Now().Add(time.Hour)),
		"usuario": user,
	})
}

func (b *Backend) listUsers(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.users)
}

func (b *Backend) listElders(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.elders)
}

func (b *Backend) createElder(c echo.Context) error {
	var elder elders.Elder
	if err := c.Bind(&elder); err != nil {
		return err
	}
	elder.ID = uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.elders = append(b.elders, elder)
	return c.JSON(http.StatusCreated, elder)
}

func (b *Backend) updateElder(c echo.Context) error {
	var elder elders.Elder
	if err := c.Bind(&elder); err != nil {
		return err
	}
	elder.ID = c.Param("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.elders {
		if b.elders[i].ID == elder.ID {
			b.elders[i] = elder
			return c.JSON(http.StatusOK, elder)
		}
	}
	return c.JSON(http.StatusNotFound, errorBody{Message: "idoso não encontrado"})
}

func (b *Backend) linkElder(c echo.Context) error {
	var link elders.Link
	if err := c.Bind(&link); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.elders {
		if b.elders[i].ID == link.ElderID {
			b.elders[i].GuardianID = link.GuardianID
			b.elders[i].CaregiverID = link.CaregiverID
			return c.NoContent(http.StatusOK)
		}
	}
	return c.JSON(http.StatusNotFound, errorBody{Message: "idoso não encontrado"})
}

func (b *Backend) setElderPhotoUrl(c echo.Context) error {
	var body struct {
		PhotoURL *string `json:"fotoUrl"`
	}
	if err := c.Bind(&body); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.elders {
		if b.elders[i].ID == c.Param("id") {
			if body.PhotoURL == nil {
				b.elders[i].PhotoURL = ""
			} else {
				b.elders[i].PhotoURL = *body.PhotoURL
			}
			return c.NoContent(http.StatusOK)
		}
	}
	return c.JSON(http.StatusNotFound, errorBody{Message: "idoso não encontrado"})
}

func (b *Backend) listEldersByGuardian(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	filtered := make([]elders.Elder, 0)
	for _, e := range b.elders {
		if e.GuardianID == c.Param("id") {
			filtered = append(filtered, e)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}

func (b *Backend) listEldersByCaregiver(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	filtered := make([]elders.Elder, 0)
	for _, e := range b.elders {
		if e.CaregiverID == c.Param("id") {
			filtered = append(filtered, e)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}

func (b *Backend) listVisits(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.visits)
}

func (b *Backend) createVisit(c echo.Context) error {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return err
	}
	body["id"] = uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.visits = append(b.visits, body)
	return c.JSON(http.StatusCreated, body)
}

func (b *Backend) listVisitsByCaregiver(c echo.Context) error {
	return b.listVisitsBy(c, "cuidadorId")
}

func (b *Backend) listVisitsByGuardian(c echo.Context) error {
	return b.listVisitsBy(c, "responsavelId")
}

func (b *Backend) listVisitsBy(c echo.Context, field string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	filtered := make([]map[string]interface{}, 0)
	for _, v := range b.visits {
		if v[field] == c.Param("id") {
			filtered = append(filtered, v)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}

func (b *Backend) createTask(c echo.Context) error {
	var task tasks.Task
	if err := c.Bind(&task); err != nil {
		return err
	}
	task.ID = uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append(b.tasks, task)
	return c.JSON(http.StatusCreated, task)
}

func (b *Backend) listTasksByElder(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	filtered := make([]tasks.Task, 0)
	for _, t := range b.tasks {
		if t.ElderID == c.Param("id") {
			filtered = append(filtered, t)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}

func (b *Backend) setTaskStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tasks {
		if b.tasks[i].ID == c.Param("id") {
			b.tasks[i].Status = body.Status
			return c.NoContent(http.StatusOK)
		}
	}
	return c.JSON(http.StatusNotFound, errorBody{Message: "tarefa não encontrada"})
}

func (b *Backend) createMedication(c echo.Context) error {
	var medication medications.Medication
	if err := c.Bind(&medication); err != nil {
		return err
	}
	medication.ID = uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.medications = append(b.medications, medication)
	return c.JSON(http.StatusCreated, medication)
}

func (b *Backend) listMedicationsByElder(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	filtered := make([]medications.Medication, 0)
	for _, m := range b.medications {
		if m.ElderID == c.Param("id") {
			filtered = append(filtered, m)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}

func (b *Backend) deleteMedication(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.medications {
		if b.medications[i].ID == c.Param("id") {
			b.medications = append(b.medications[:i], b.medications[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.JSON(http.StatusNotFound, errorBody{Message: "medicação não encontrada"})
}

func (b *Backend) listConditions(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.conditions)
}

func (b *Backend) createCondition(c echo.Context) error {
	var condition conditions.Condition
	if err := c.Bind(&condition); err != nil {
		return err
	}
	condition.ID = uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.conditions = append(b.conditions, condition)
	return c.JSON(http.StatusCreated, condition)
}

func (b *Backend) listNotificationsByUser(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	filtered := make([]notifications.Notification, 0)
	for _, n := range b.notifications {
		if n.UserID == c.Param("id") {
			filtered = append(filtered, n)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}

func (b *Backend) setNotificationRead(c echo.Context) error {
	var body struct {
		Read bool `json:"lida"`
	}
	if err := c.Bind(&body); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.notifications {
		if b.notifications[i].ID == c.Param("id") {
			b.notifications[i].Read = body.Read
			return c.NoContent(http.StatusOK)
		}
	}
	return c.JSON(http.StatusNotFound, errorBody{Message: "notificação não encontrada"})
}
