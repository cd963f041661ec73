package service

import (
	"context"

	"github.com/MKhiriev/moneydashboard/internal/adapter"
	"github.com/MKhiriev/moneydashboard/internal/config"
	"github.com/MKhiriev/moneydashboard/internal/logger"
	"github.com/MKhiriev/moneydashboard/internal/utils"
	"github.com/MKhiriev/moneydashboard/models"
)

type clientSessionService struct {
	adapter     adapter.DashboardAdapter
	credentials models.Credentials
	limit       int

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewClientSessionService(dashboardAdapter adapter.DashboardAdapter, creds models.Credentials, appCfg config.ClientApp, log *logger.Logger) ClientSessionService {
	limit := appCfg.TransactionsLimit
	if limit <= 0 {
		limit = config.DefaultTransactionsLimit
	}

	return &clientSessionService{
		adapter:     dashboardAdapter,
		credentials: creds,
		limit:       limit,
		ids:         utils.NewUUIDGenerator(),
		logger:      log,
	}
}

func (s *clientSessionService) EnsureAuthenticatedSession(ctx context.Context) (*utils.HTTPClient, error) {
	return s.login(s.withLoginCycle(ctx))
}

func (s *clientSessionService) ListAccounts(ctx context.Context) (models.AccountList, error) {
	ctx = s.withLoginCycle(ctx)
	if _, err := s.login(ctx); err != nil {
		return nil, err
	}

	return s.adapter.GetAccounts(ctx)
}

func (s *clientSessionService) ListTransactions(ctx context.Context, limit int) (models.TransactionList, error) {
	if limit <= 0 {
		limit = s.limit
	}

	ctx = s.withLoginCycle(ctx)
	if _, err := s.login(ctx); err != nil {
		return nil, err
	}

	return s.adapter.GetTransactions(ctx, limit)
}

func (s *clientSessionService) Token() string {
	return s.adapter.Token()
}

func (s *clientSessionService) Session() *utils.HTTPClient {
	return s.adapter.Session()
}

// login runs one token + credential exchange. The token never outlives the
// cycle that fetched it.
func (s *clientSessionService) login(ctx context.Context) (*utils.HTTPClient, error) {
	landing, err := s.adapter.FetchVerificationToken(ctx)
	if err != nil {
		return nil, err
	}

	return s.adapter.Login(ctx, s.credentials, landing)
}

// withLoginCycle tags every log line of one login cycle with a fresh id.
func (s *clientSessionService) withLoginCycle(ctx context.Context) context.Context {
	cycleLog := logger.FromContextOr(ctx, s.logger).With().
		Str("login_cycle", s.ids.Generate()).
		Logger()

	return cycleLog.WithContext(ctx)
}
