package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/entity/budget"
	"max.ks1230/finance-app/internal/entity/currency"
	"max.ks1230/finance-app/internal/entity/transaction"
	"max.ks1230/finance-app/internal/entity/user"
	"max.ks1230/finance-app/internal/entity/wallet"
	"max.ks1230/finance-app/internal/logger"
	"max.ks1230/finance-app/internal/model/budgets"
	"max.ks1230/finance-app/internal/model/reports"
	"max.ks1230/finance-app/internal/model/transactions"
	"max.ks1230/finance-app/internal/model/wallets"
)

type config interface {
	Addr() string
	Mode() string
}

type usersService interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	SetPrimaryCurrency(ctx context.Context, userID uuid.UUID, code string) (user.Profile, error)
	PrimaryCurrency(ctx context.Context, userID uuid.UUID) (string, error)
}

type walletsService interface {
	Create(ctx context.Context, userID uuid.UUID, req wallets.NewWallet) (wallet.Wallet, error)
	Get(ctx context.Context, userID, walletID uuid.UUID) (wallet.Wallet, error)
	List(ctx context.Context, userID uuid.UUID) ([]wallet.Wallet, error)
	SetPrimary(ctx context.Context, userID, walletID uuid.UUID) (wallet.Wallet, error)
	Delete(ctx context.Context, userID, walletID uuid.UUID) error
}

type transactionsService interface {
	AddIncome(ctx context.Context, userID uuid.UUID, req transactions.NewTransaction) (transaction.Income, error)
	AddExpense(ctx context.Context, userID uuid.UUID, req transactions.NewTransaction) (transaction.Expense, error)
	GetIncome(ctx context.Context, userID, id uuid.UUID) (transaction.Income, error)
	GetExpense(ctx context.Context, userID, id uuid.UUID) (transaction.Expense, error)
	UpdateIncome(ctx context.Context, userID, id uuid.UUID, req transactions.NewTransaction) (transaction.Income, error)
	UpdateExpense(ctx context.Context, userID, id uuid.UUID, req transactions.NewTransaction) (transaction.Expense, error)
	CompleteIncome(ctx context.Context, userID, id uuid.UUID) (transaction.Income, error)
	CompleteExpense(ctx context.Context, userID, id uuid.UUID) (transaction.Expense, error)
	DeleteIncome(ctx context.Context, userID, id uuid.UUID) error
	DeleteExpense(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, f transactions.ListFilter) ([]transactions.Entry, error)

	CreateCategory(ctx context.Context, userID uuid.UUID, name, icon string) (transaction.Label, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]transaction.Label, error)
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) error
	CreateIncomeSource(ctx context.Context, userID uuid.UUID, name, icon string) (transaction.Label, error)
	ListIncomeSources(ctx context.Context, userID uuid.UUID) ([]transaction.Label, error)
	DeleteIncomeSource(ctx context.Context, userID, id uuid.UUID) error

	CreateTemplate(ctx context.Context, userID uuid.UUID, req transactions.NewTemplate) (transaction.Recurring, error)
	GetTemplate(ctx context.Context, userID, id uuid.UUID) (transaction.Recurring, error)
	ListTemplates(ctx context.Context, userID uuid.UUID) ([]transaction.Recurring, error)
	SetTemplateActive(ctx context.Context, userID, id uuid.UUID, active bool) (transaction.Recurring, error)
	DeleteTemplate(ctx context.Context, userID, id uuid.UUID) error
}

type budgetsService interface {
	Create(ctx context.Context, userID uuid.UUID, req budgets.NewBudget) (budget.Budget, error)
	Update(ctx context.Context, userID, id uuid.UUID, req budgets.NewBudget) (budget.Budget, error)
	SetStatus(ctx context.Context, userID, id uuid.UUID, status string) (budget.Budget, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Progress(ctx context.Context, userID, id uuid.UUID) (budgets.Progress, error)
	ListProgress(ctx context.Context, userID uuid.UUID) ([]budgets.Progress, error)
}

type ratesService interface {
	ListRates(ctx context.Context) ([]currency.Rate, error)
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (currency.Conversion, error)
}

type reportsService interface {
	Summary(ctx context.Context, userID uuid.UUID) (reports.Summary, error)
}

type reportsProducer interface {
	ProduceMessage(key string, message []byte) error
}

type reportsCache interface {
	GetReport(userID string, period string) ([]byte, error)
	InvalidateReports(userID string, periods []string) error
}

// Deps are the services the HTTP surface exposes.
type Deps struct {
	Users        usersService
	Wallets      walletsService
	Transactions transactionsService
	Budgets      budgetsService
	Rates        ratesService
	Reports      reportsService
	Producer     reportsProducer
	ReportsCache reportsCache
}

type Server struct {
	engine *gin.Engine
	addr   string
}

func New(cfg config, deps Deps) *Server {
	if cfg.Mode() != "" {
		gin.SetMode(cfg.Mode())
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), logRequests(), observeResponses(), traceRequests())

	h := &handler{deps: deps}
	registerRoutes(engine, h)

	return &Server{engine: engine, addr: cfg.Addr()}
}

func registerRoutes(engine *gin.Engine, h *handler) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api", authRequired())

	api.GET("/profile", h.getProfile)
	api.PUT("/profile/currency", h.setPrimaryCurrency)
	api.GET("/currencies", h.listCurrencies)
	api.GET("/currencies/convert", h.convertAmount)

	api.GET("/wallets", h.listWallets)
	api.POST("/wallets", h.createWallet)
	api.GET("/wallets/:id", h.getWallet)
	api.PUT("/wallets/:id/primary", h.setPrimaryWallet)
	api.DELETE("/wallets/:id", h.deleteWallet)

	api.GET("/categories", h.listCategories)
	api.POST("/categories", h.createCategory)
	api.DELETE("/categories/:id", h.deleteCategory)
	api.GET("/sources", h.listSources)
	api.POST("/sources", h.createSource)
	api.DELETE("/sources/:id", h.deleteSource)

	api.POST("/incomes", h.createIncome)
	api.GET("/incomes/:id", h.getIncome)
	api.PUT("/incomes/:id", h.updateIncome)
	api.POST("/incomes/:id/complete", h.completeIncome)
	api.DELETE("/incomes/:id", h.deleteIncome)

	api.POST("/expenses", h.createExpense)
	api.GET("/expenses/:id", h.getExpense)
	api.PUT("/expenses/:id", h.updateExpense)
	api.POST("/expenses/:id/complete", h.completeExpense)
	api.DELETE("/expenses/:id", h.deleteExpense)

	api.GET("/transactions", h.listTransactions)

	api.GET("/recurring", h.listTemplates)
	api.POST("/recurring", h.createTemplate)
	api.GET("/recurring/:id", h.getTemplate)
	api.PUT("/recurring/:id/active", h.setTemplateActive)
	api.DELETE("/recurring/:id", h.deleteTemplate)

	api.GET("/budgets", h.listBudgets)
	api.POST("/budgets", h.createBudget)
	api.GET("/budgets/:id", h.getBudget)
	api.PUT("/budgets/:id", h.updateBudget)
	api.PUT("/budgets/:id/status", h.setBudgetStatus)
	api.DELETE("/budgets/:id", h.deleteBudget)

	api.GET("/reports/summary", h.getSummary)
	api.GET("/reports/dashboard", h.getDashboard)
	api.POST("/reports/dashboard/refresh", h.refreshDashboard)
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("http server listening", zap.String("addr", s.addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type handler struct {
	deps Deps
}
