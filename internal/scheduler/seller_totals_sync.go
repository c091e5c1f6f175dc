// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/internal/config"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type SellerTotalsSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// SellerTotalsSyncService recalcula periodicamente o total de vendas
// denormalizado de cada vendedor aprovado. A coluna total_vendas é só uma
// conveniência de leitura; a fonte da verdade continua sendo a agregação
// sobre a tabela de vendas.
type SellerTotalsSyncService struct {
	scheduler           *gocron.Scheduler
	saleRepo            repository.SaleRepository
	sellerRepo          repository.SellerRepository
	config              SellerTotalsSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSellerTotalsSyncService(
	saleRepo repository.SaleRepository,
	sellerRepo repository.SellerRepository,
	cfg *config.Config,
) *SellerTotalsSyncService {
	syncConfig := SellerTotalsSyncConfig{
		CronSchedule: cfg.SellerTotalsSync.CronSchedule, // Default: 5h da manhã todos os dias
		Enabled:      cfg.SellerTotalsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de totais por vendedor carregada")

	return &SellerTotalsSyncService{
		scheduler:  scheduler,
		saleRepo:   saleRepo,
		sellerRepo: sellerRepo,
		config:     syncConfig,
	}
}

func (s *SellerTotalsSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização de totais por vendedor desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização de totais por vendedor")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSellerTotals(); err != nil {
			logrus.WithError(err).Error("Erro na atualização de totais por vendedor")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de totais por vendedor: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de totais por vendedor")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSellerTotals calcula os totais em uma única query agrupada e grava o
// resultado na tabela de vendedores.
func (s *SellerTotalsSyncService) SyncSellerTotals() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização de totais por vendedor já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização de totais por vendedor")

	aggregates, err := s.saleRepo.AggregateByApprovedSeller()
	if err != nil {
		logrus.WithError(err).Error("Erro ao agregar vendas por vendedor")
		return err
	}

	if len(aggregates) == 0 {
		logrus.Info("Nenhum vendedor aprovado encontrado para atualização de totais")
		return nil
	}

	totals := make([]repository.SellerTotal, 0, len(aggregates))
	for _, agg := range aggregates {
		totals = append(totals, repository.SellerTotal{
			UserID: agg.UserID,
			Total:  agg.TotalValue,
		})
	}

	if err := s.sellerRepo.UpdateTotals(totals); err != nil {
		logrus.WithError(err).Error("Erro ao gravar totais por vendedor")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"sellers": len(totals),
	}).Info("Atualização de totais por vendedor concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de totais
func (s *SellerTotalsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de totais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de totais por vendedor")
	go s.SyncSellerTotals()
}

// GetStatus retorna o status atual do agendador
func (s *SellerTotalsSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
