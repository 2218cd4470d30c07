package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/problemrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetProblemsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetProblemsQueryHandler
}

func (suite *GetProblemsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&problemrepo.ProblemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetProblemsQueryHandler(db)
}

func (suite *GetProblemsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProblemsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE problems").Error
	suite.Require().NoError(err)
}

func (suite *GetProblemsQueryHandlerTestSuite) insertProblem(description string, createdAt time.Time) kernel.UUID {
	id := kernel.NewUUID()
	dto := problemrepo.ProblemDTO{
		ID:          id.Bytes(),
		DeliveryID:  uuid.New(),
		Description: description,
		CreatedAt:   createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *GetProblemsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetProblemsQuery(1, 10, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProblemsQueryHandlerTestSuite) TestHandle_ReturnsNewestFirst() {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	oldest := suite.insertProblem("flat tire", base)
	middle := suite.insertProblem("recipient absent", base.Add(time.Hour))
	newest := suite.insertProblem("package damaged", base.Add(2*time.Hour))

	query, err := queries.NewGetProblemsQuery(1, 10, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(newest, result[0].ID)
	suite.Equal(middle, result[1].ID)
	suite.Equal(oldest, result[2].ID)
}

func (suite *GetProblemsQueryHandlerTestSuite) TestHandle_FilterMatchesCaseInsensitively() {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	damaged := suite.insertProblem("Package DAMAGED in transit", base)
	suite.insertProblem("recipient absent", base.Add(time.Hour))

	query, err := queries.NewGetProblemsQuery(1, 10, "damaged")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(damaged, result[0].ID)
}

func (suite *GetProblemsQueryHandlerTestSuite) TestHandle_Pagination() {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	for i := range 5 {
		suite.insertProblem("problem", base.Add(time.Duration(i)*time.Minute))
	}

	firstPage, err := queries.NewGetProblemsQuery(1, 2, "")
	suite.Require().NoError(err)
	secondPage, err := queries.NewGetProblemsQuery(2, 2, "")
	suite.Require().NoError(err)
	thirdPage, err := queries.NewGetProblemsQuery(3, 2, "")
	suite.Require().NoError(err)

	first, err := suite.handler.Handle(context.Background(), firstPage)
	suite.Require().NoError(err)
	second, err := suite.handler.Handle(context.Background(), secondPage)
	suite.Require().NoError(err)
	third, err := suite.handler.Handle(context.Background(), thirdPage)
	suite.Require().NoError(err)

	suite.Len(first, 2)
	suite.Len(second, 2)
	suite.Len(third, 1)
}

func (suite *GetProblemsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetProblemsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetProblemsQuery constructor")
}

func TestGetProblemsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProblemsQueryHandlerTestSuite))
}
