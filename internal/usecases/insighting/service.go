package insighting

import (
	"context"
	"fmt"
	"time"

	"github.com/gwr-marine/ops-analytics/infrastructure/repository"
	"github.com/gwr-marine/ops-analytics/internal/config"
	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/accounting"
	"github.com/gwr-marine/ops-analytics/internal/usecases/consumption"
	"github.com/gwr-marine/ops-analytics/internal/usecases/filtering"
	"github.com/gwr-marine/ops-analytics/internal/usecases/inventory"
	"github.com/gwr-marine/ops-analytics/internal/usecases/kpi"
	"github.com/gwr-marine/ops-analytics/internal/usecases/normalizing"
	"github.com/gwr-marine/ops-analytics/internal/usecases/ranking"
	"github.com/gwr-marine/ops-analytics/pkg/log"
	"golang.org/x/sync/errgroup"
)

var _ Insighter = (*Service)(nil)

// Service busca o snapshot de dados no repositório e delega os cálculos ao núcleo
type Service struct {
	cfg               config.Analytics
	datasetRepository repository.DatasetRepository
	normalizer        normalizing.NameNormalizer
	engine            *filtering.Engine
	aggregator        *kpi.Aggregator
	ranking           *ranking.Builder
	classifier        *inventory.Classifier
	accounts          *accounting.Resolver
	products          []domain.ProductDefinition
	drinkCategories   []domain.CategoryDefinition
	foodCategories    []domain.CategoryDefinition
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	cfg config.Analytics,
	datasetRepo repository.DatasetRepository,
	normalizer normalizing.NameNormalizer,
) (*Service, error) {
	classifier, err := inventory.NewClassifier(cfg.StockThresholds())
	if err != nil {
		return nil, err
	}

	engine := filtering.NewEngine(normalizer)

	return &Service{
		cfg:               cfg,
		datasetRepository: datasetRepo,
		normalizer:        normalizer,
		engine:            engine,
		aggregator:        kpi.NewAggregator(engine),
		ranking:           ranking.NewBuilder(normalizer),
		classifier:        classifier,
		accounts:          accounting.NewResolver(config.DefaultSupplierAccounts(), config.AccountLabels(), config.AccountPayable),
		products:          config.FoodProducts(),
		drinkCategories:   config.DrinkCategories(),
		foodCategories:    config.FoodCategories(),
	}, nil
}

// GetDashboard carrega todo o histórico até o fim do filtro: os KPIs precisam do período
// anterior e o saldo de estoque é acumulado desde o primeiro registro.
func (s *Service) GetDashboard(ctx context.Context, filter domain.Filter) (*domain.DashboardView, error) {
	history, window, err := s.loadHistory(ctx, filter)
	if err != nil {
		return nil, err
	}

	current, err := s.engine.Apply(*history, filter)
	if err != nil {
		return nil, err
	}

	view := &domain.DashboardView{Filter: filter}

	// Cada goroutine escreve apenas no seu campo da view
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		kpis, err := s.aggregator.Compute(*history, filter)
		view.KPIs = kpis
		return err
	})
	g.Go(func() error {
		view.TopClients = s.ranking.TopClients(current.Orders, current.Lines, s.cfg.TopClientsLimit)
		view.MenuPerformance = ranking.MenuPerformance(current.Lines)
		return nil
	})
	g.Go(func() error {
		view.TopSuppliers = s.ranking.TopSuppliers(current.Expenses, s.cfg.TopSuppliersLimit)
		return nil
	})
	g.Go(func() error {
		view.MonthlySeries = kpi.MonthlySeries(current)
		view.WeeklyRevenue = kpi.WeeklyRevenue(current.Orders, current.Lines)
		return nil
	})
	g.Go(func() error {
		view.Inventory = s.classifier.ComputeAsOf(*history, window, s.products)
		return nil
	})
	g.Go(func() error {
		view.DrinksConsumption = consumption.Summarize(current.DrinksUsage, s.drinkCategories)
		view.FoodConsumption = consumption.Summarize(current.FoodUsage, s.foodCategories)
		return nil
	})
	g.Go(func() error {
		view.FoodCosts = consumption.DailyFoodCosts(window.Expenses, window.FoodUsage, s.products)
		view.DrinksCosts = consumption.DailyDrinksCosts(window.DrinksUsage, s.drinkCategories)
		return nil
	})
	g.Go(func() error {
		clients, err := s.GetClientNames(gctx)
		if err != nil {
			return err
		}
		suppliers, err := s.datasetRepository.ListSupplierNames(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrListNames, err)
		}

		view.ClientNames = clients
		view.SupplierNames = s.engine.UniqueNames(suppliers)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logIgnoredRecords(ctx, view)

	log.ForContext(ctx).WithFields(log.Fields{
		"orders":   len(current.Orders),
		"expenses": len(current.Expenses),
	}).Debug("Painel calculado")

	return view, nil
}

// logIgnoredRecords avisa quando valores inválidos foram somados como zero em alguma visão
func logIgnoredRecords(ctx context.Context, view *domain.DashboardView) {
	fields := log.Fields{}
	if view.KPIs != nil && view.KPIs.IgnoredRecords > 0 {
		fields["kpi_ignored_records"] = view.KPIs.IgnoredRecords
	}

	usage := 0
	for _, summary := range view.DrinksConsumption {
		usage += summary.IgnoredRecords
	}
	for _, summary := range view.FoodConsumption {
		usage += summary.IgnoredRecords
	}
	if usage > 0 {
		fields["usage_ignored_records"] = usage
	}

	if costs := view.FoodCosts.IgnoredRecords + view.DrinksCosts.IgnoredRecords; costs > 0 {
		fields["cost_ignored_records"] = costs
	}

	if len(fields) > 0 {
		log.ForContext(ctx).WithFields(fields).Warn("Registros com valores inválidos foram somados como zero")
	}
}

func (s *Service) GetTopClients(ctx context.Context, filter domain.Filter, limit int) ([]domain.TopClientRow, error) {
	if limit <= 0 {
		limit = s.cfg.TopClientsLimit
	}

	current, err := s.loadFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.ranking.TopClients(current.Orders, current.Lines, limit), nil
}

func (s *Service) GetInventory(ctx context.Context, filter domain.Filter) ([]domain.InventoryItem, error) {
	history, window, err := s.loadHistory(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.classifier.ComputeAsOf(*history, window, s.products), nil
}

func (s *Service) GetOrderRecommendations(ctx context.Context, filter domain.Filter) ([]domain.OrderRecommendation, error) {
	items, err := s.GetInventory(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.classifier.Recommend(items, s.cfg.OrderBufferDays), nil
}

func (s *Service) GetConsumption(ctx context.Context, filter domain.Filter, kind domain.UsageKind) ([]domain.ConsumptionSummary, error) {
	var categories []domain.CategoryDefinition
	switch kind {
	case domain.DrinksUsage:
		categories = s.drinkCategories
	case domain.FoodUsage:
		categories = s.foodCategories
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownUsageKind, kind)
	}

	current, err := s.loadFiltered(ctx, datesOnly(filter))
	if err != nil {
		return nil, err
	}

	return consumption.Summarize(current.Usage(kind), categories), nil
}

func (s *Service) GetCosts(ctx context.Context, filter domain.Filter, kind domain.UsageKind) (*domain.CostView, error) {
	if kind != domain.FoodUsage && kind != domain.DrinksUsage {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUsageKind, kind)
	}

	window, err := s.loadFiltered(ctx, datesOnly(filter))
	if err != nil {
		return nil, err
	}

	view := &domain.CostView{Kind: kind}
	if kind == domain.FoodUsage {
		view.Report = consumption.DailyFoodCosts(window.Expenses, window.FoodUsage, s.products)
		view.Purchases = consumption.IngredientPurchases(window.Expenses, s.products)
	} else {
		view.Report = consumption.DailyDrinksCosts(window.DrinksUsage, s.drinkCategories)
		view.Purchases = consumption.DrinksPurchases(window.Expenses)
	}

	return view, nil
}

func (s *Service) GetAccountExport(ctx context.Context, filter domain.Filter) (*domain.AccountExport, error) {
	current, err := s.loadFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := s.accounts.ExportRows(current.Expenses)
	summary := accounting.Summarize(rows)
	if summary.UnmappedCount > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"unmapped_suppliers": summary.UnmappedSuppliers,
		}).Info("Despesas exportadas na conta padrão")
	}

	return &domain.AccountExport{Rows: rows, Summary: summary}, nil
}

func (s *Service) GetClientNames(ctx context.Context) ([]string, error) {
	names, err := s.datasetRepository.ListClientNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListNames, err)
	}

	return s.engine.UniqueNames(names), nil
}

func (s *Service) SuggestNames(ctx context.Context, query string) ([]domain.NameMatch, error) {
	clients, err := s.datasetRepository.ListClientNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListNames, err)
	}

	suppliers, err := s.datasetRepository.ListSupplierNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListNames, err)
	}

	return s.normalizer.FindMatches(query, append(clients, suppliers...)), nil
}

// loadFiltered busca somente o período pedido e aplica o filtro completo
func (s *Service) loadFiltered(ctx context.Context, filter domain.Filter) (domain.Dataset, error) {
	if err := s.engine.Validate(filter); err != nil {
		return domain.Dataset{}, err
	}

	dataset, err := s.load(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return domain.Dataset{}, err
	}

	return s.engine.Apply(*dataset, filter)
}

// loadHistory busca tudo até o fim do filtro e devolve também o recorte só por datas
func (s *Service) loadHistory(ctx context.Context, filter domain.Filter) (*domain.Dataset, domain.Dataset, error) {
	if err := s.engine.Validate(filter); err != nil {
		return nil, domain.Dataset{}, err
	}

	history, err := s.load(ctx, nil, filter.EndDate)
	if err != nil {
		return nil, domain.Dataset{}, err
	}

	window, err := s.engine.Apply(*history, datesOnly(filter))
	if err != nil {
		return nil, domain.Dataset{}, err
	}

	return history, window, nil
}

func (s *Service) load(ctx context.Context, from, to *time.Time) (*domain.Dataset, error) {
	dataset, err := s.datasetRepository.LoadDataset(ctx, from, to)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao carregar dados do período")
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	if dataset == nil {
		dataset = &domain.Dataset{}
	}
	s.accounts.Assign(dataset.Expenses)
	return dataset, nil
}

func datesOnly(filter domain.Filter) domain.Filter {
	return domain.Filter{StartDate: filter.StartDate, EndDate: filter.EndDate}
}
