//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/infra/dependency"
	"github.com/budget-tracker/backend/internal/integration/cache"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
	"github.com/budget-tracker/backend/test/integration/mock"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:      "pretty",
			Paths:       []string{"../features"},
			Tags:        tags,
			Concurrency: 1,
			Strict:      true,
			TestingT:    t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db
	redis    *mock.Redis
	timeMock *mock.Time
	ids      map[string]uuid.UUID
	lastID   uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testRedis *mock.Redis
var testTime = mock.NewTime()
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:      fmt.Sprintf("http://localhost:%d", testServerPort),
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: testTime,
		db:       mock.NewDb(),
		redis:    mock.NewRedis(),
	}

	testDB = test.db
	testRedis = test.redis

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Record setup steps
	ctx.Given(`^a category exists with name "([^"]*)"$`, test.aCategoryExistsWithName)
	ctx.Given(`^a debt "([^"]*)" exists with total "([^"]*)" and paid "([^"]*)"$`, test.aDebtExistsWithTotalAndPaid)
	ctx.Given(`^the following incomes exist:$`, test.theFollowingIncomesExist)
	ctx.Given(`^the following expenses exist:$`, test.theFollowingExpensesExist)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I remember the response id as "([^"]*)"$`, test.iRememberTheResponseIDAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should be a list of (\d+) items$`, test.theResponseShouldBeAListOfItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Cache assertion steps
	ctx.Then(`^the dashboard cache version should be "([^"]*)"$`, test.theDashboardCacheVersionShouldBe)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.ids = make(map[string]uuid.UUID)
	t.lastID = uuid.Nil
	t.response = nil
	t.timeMock.Reset()

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return t.redis.Clear()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			dashboardCache := cache.NewRedisDashboardCache(testRedis.Client, time.Minute)
			injector := dependency.NewInjector(cfg, testDB.DbConn, dashboardCache, testTime.Now)
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) aCategoryExistsWithName(name string) error {
	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(categoryModel).Error; err != nil {
		return err
	}
	t.ids["category:"+name] = categoryModel.ID
	return nil
}

func (t *testContext) aDebtExistsWithTotalAndPaid(name, total, paid string) error {
	totalAmount, err := decimal.NewFromString(total)
	if err != nil {
		return err
	}
	paidAmount, err := decimal.NewFromString(paid)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	debt := &entity.Debt{
		ID:          uuid.New(),
		Name:        name,
		TotalAmount: totalAmount,
		PaidAmount:  paidAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(model.DebtFromEntity(debt)).Error; err != nil {
		return err
	}
	t.ids["debt:"+name] = debt.ID
	return nil
}

// theFollowingIncomesExist expects the columns amount, source, type and date.
func (t *testContext) theFollowingIncomesExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return err
		}
		date, err := time.Parse(time.DateOnly, row["date"])
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		income := &entity.Income{
			ID:        uuid.New(),
			Amount:    amount,
			Source:    row["source"],
			Type:      entity.IncomeType(row["type"]),
			Date:      date,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := t.db.DbConn.Create(model.IncomeFromEntity(income)).Error; err != nil {
			return err
		}
	}
	return nil
}

// theFollowingExpensesExist expects the columns amount, description, category and date.
// An empty category leaves the expense uncategorized.
func (t *testContext) theFollowingExpensesExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return err
		}
		date, err := time.Parse(time.DateOnly, row["date"])
		if err != nil {
			return err
		}

		var categoryID *uuid.UUID
		if name := row["category"]; name != "" {
			id, ok := t.ids["category:"+name]
			if !ok {
				return fmt.Errorf("category %q was not created in this scenario", name)
			}
			categoryID = &id
		}

		now := time.Now().UTC()
		expense := &entity.Expense{
			ID:          uuid.New(),
			Amount:      amount,
			Description: row["description"],
			CategoryID:  categoryID,
			Date:        date,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := t.db.DbConn.Create(model.ExpenseFromEntity(expense)).Error; err != nil {
			return err
		}
	}
	return nil
}

func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) == 0 {
		return nil, errors.New("table has no header row")
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, r := range table.Rows[1:] {
		row := make(map[string]string, len(header))
		for i, cell := range r.Cells {
			row[header[i].Value] = cell.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iRememberTheResponseIDAs(name string) error {
	if t.lastID == uuid.Nil {
		return errors.New("last response carried no id")
	}
	t.ids[name] = t.lastID
	return nil
}

// replacePlaceholders substitutes {{name}} with ids recorded during the scenario.
// {{last_id}} is the id of the most recent response object.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	for name, id := range t.ids {
		content = strings.ReplaceAll(content, "{{"+name+"}}", id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if object, ok := responseBody.(map[string]any); ok {
		if idStr, ok := object["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	default:
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value, found := getFieldValue(t.response.body, field)
	if !found {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := "null"
	if value != nil {
		actualValue = fmt.Sprintf("%v", value)
	}
	if actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if _, found := getFieldValue(t.response.body, field); !found {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeAListOfItems(quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	items, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON array: %v", t.response.body)
	}
	if len(items) != quantity {
		return fmt.Errorf("expected %d items, got %d: %v", quantity, len(items), items)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entitySlicePtr, err := t.modelSlice(table)
	if err != nil {
		return err
	}

	if err := t.db.DbConn.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entitySlicePtr, err := t.modelSlice(table)
	if err != nil {
		return err
	}

	query := t.db.DbConn
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) modelSlice(table string) (reflect.Value, error) {
	m, ok := t.db.GetModel(table)
	if !ok {
		return reflect.Value{}, fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(m).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)
	return entitySlicePtr, nil
}

func (t *testContext) theDashboardCacheVersionShouldBe(expected string) error {
	actual, err := t.redis.Server.Get("dashboard:version")
	if err != nil {
		actual = "0"
	}
	if actual != expected {
		return fmt.Errorf("dashboard cache version expected '%s', got '%s'", expected, actual)
	}
	return nil
}

// getFieldValue walks a dot separated path through objects and arrays.
// Numeric segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) (any, bool) {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		switch v := field.(type) {
		case []any:
			i, err := strconv.Atoi(currentField)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			field = v[i]
		case map[string]any:
			value, ok := v[currentField]
			if !ok {
				return nil, false
			}
			field = value
		default:
			return nil, false
		}
	}
	return field, true
}
