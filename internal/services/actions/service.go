// Package actions performs confirmed portfolio mutations
package actions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	folio "github.com/bobmcallan/folio/internal/clients/folio"
	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

// Service implements ActionService. Every mutation follows the same
// shape: optional confirmation, a single POST, then a dashboard
// refresh on success. A rejected mutation (success:false) surfaces the
// server's message and skips the refresh, so the view never shows an
// optimistic state the server did not confirm.
type Service struct {
	client    interfaces.FolioClient
	dashboard interfaces.DashboardService
	logger    *common.Logger
}

// ErrCancelled reports that the user declined the confirmation prompt.
var ErrCancelled = errors.New("action cancelled")

// NewService creates a new action service
func NewService(client interfaces.FolioClient, dashboard interfaces.DashboardService, logger *common.Logger) *Service {
	return &Service{
		client:    client,
		dashboard: dashboard,
		logger:    logger,
	}
}

// AddAsset registers an asset then refreshes the dashboard.
func (s *Service) AddAsset(ctx context.Context, asset *models.SearchResult) error {
	if err := s.client.AddAsset(ctx, asset); err != nil {
		return s.report(err, "add asset")
	}
	s.logger.Info().Str("symbol", asset.Symbol).Msg("Asset added")
	return s.refresh(ctx)
}

// AddTransaction records a transaction then refreshes the dashboard.
func (s *Service) AddTransaction(ctx context.Context, symbol string, tx *models.TransactionRow) error {
	if err := s.client.AddTransaction(ctx, symbol, tx); err != nil {
		return s.report(err, "add transaction")
	}
	if s.dashboard != nil {
		s.dashboard.RecordTransaction(symbol, tx)
	}
	s.logger.Info().Str("symbol", symbol).Str("type", string(tx.Type)).Msg("Transaction added")
	return s.refresh(ctx)
}

// DeleteAsset removes an asset after confirmation.
func (s *Service) DeleteAsset(ctx context.Context, symbol string, confirm interfaces.Confirmer) error {
	if !confirm(fmt.Sprintf("Delete %s and all its transactions?", symbol)) {
		return ErrCancelled
	}
	if err := s.client.DeleteAsset(ctx, symbol); err != nil {
		return s.report(err, "delete asset")
	}
	s.logger.Info().Str("symbol", symbol).Msg("Asset deleted")
	return s.refresh(ctx)
}

// DeleteTransaction removes a transaction after confirmation.
func (s *Service) DeleteTransaction(ctx context.Context, symbol string, tx *models.TransactionRow, confirm interfaces.Confirmer) error {
	prompt := fmt.Sprintf("Delete %s of %g %s at %g on %s?", tx.Type, tx.Quantity, symbol, tx.Price, tx.Date)
	if !confirm(prompt) {
		return ErrCancelled
	}
	if err := s.client.DeleteTransaction(ctx, symbol, tx); err != nil {
		return s.report(err, "delete transaction")
	}
	s.logger.Info().Str("symbol", symbol).Msg("Transaction deleted")
	return s.refresh(ctx)
}

// DeletePortfolio removes the whole portfolio after confirmation.
func (s *Service) DeletePortfolio(ctx context.Context, confirm interfaces.Confirmer) error {
	if !confirm("Delete the whole portfolio? This cannot be undone.") {
		return ErrCancelled
	}
	if err := s.client.DeletePortfolio(ctx); err != nil {
		return s.report(err, "delete portfolio")
	}
	s.logger.Info().Msg("Portfolio deleted")
	return nil
}

// ImportTransactions uploads a CSV file of transactions for an asset.
func (s *Service) ImportTransactions(ctx context.Context, symbol string, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if err := s.client.ImportTransactions(ctx, symbol, filepath.Base(path), f); err != nil {
		return s.report(err, "import transactions")
	}
	s.logger.Info().Str("symbol", symbol).Str("file", path).Msg("Transactions imported")
	return s.refresh(ctx)
}

// report logs a failed mutation, distinguishing server rejection from
// transport failure.
func (s *Service) report(err error, action string) error {
	var mu *folio.MutationError
	if errors.As(err, &mu) {
		s.logger.Warn().Str("action", action).Str("reason", mu.Reason).Msg("Mutation rejected by server")
		return err
	}
	s.logger.Error().Err(err).Str("action", action).Msg("Mutation failed")
	return fmt.Errorf("%s: %w", action, err)
}

// refresh reloads the dashboard after a confirmed mutation. A failed
// refresh does not undo the mutation, so it is reported but the action
// itself still succeeds.
func (s *Service) refresh(ctx context.Context) error {
	if s.dashboard == nil {
		return nil
	}
	if _, err := s.dashboard.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard refresh after mutation failed")
	}
	return nil
}

// Ensure Service implements ActionService
var _ interfaces.ActionService = (*Service)(nil)
