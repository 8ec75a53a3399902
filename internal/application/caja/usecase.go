package caja

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

// ReceiptGenerator genera el comprobante de cierre de una caja CERRADA.
type ReceiptGenerator interface {
	GenerateCloseReceipt(ctx context.Context, session *entity.CashSession) ([]byte, error)
}

// UseCase gestiona las sesiones de caja por sucursal.
// El cierre es un update condicional atómico en el repositorio: no hay
// ventana leer-luego-escribir entre peticiones concurrentes.
type UseCase struct {
	repo    repository.CashSessionRepository
	receipt ReceiptGenerator
}

// NewUseCase construye el caso de uso de cajas.
func NewUseCase(repo repository.CashSessionRepository, receipt ReceiptGenerator) *UseCase {
	return &UseCase{repo: repo, receipt: receipt}
}

// Open abre una caja para la sucursal. Falla con ErrCashSessionOpen si ya
// existe una ABIERTA (el índice único parcial de la tabla lo garantiza).
func (uc *UseCase) Open(ctx context.Context, branchID int64, initialAmount decimal.Decimal) (*dto.CajaResponse, error) {
	if branchID <= 0 || initialAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	session, err := uc.repo.Open(branchID, initialAmount)
	if err != nil {
		return nil, err
	}
	return toResponse(session), nil
}

// Close cierra la caja ABIERTA de la sucursal fijando monto_final.
// Una caja CERRADA es terminal: un segundo cierre para la misma sucursal
// falla con ErrNoOpenCashSession.
func (uc *UseCase) Close(ctx context.Context, branchID int64, finalAmount decimal.Decimal) (*dto.CajaResponse, error) {
	if branchID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	session, err := uc.repo.CloseOpen(branchID, finalAmount)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoOpenCashSession
	}
	return toResponse(session), nil
}

// Current devuelve la caja ABIERTA de la sucursal.
func (uc *UseCase) Current(ctx context.Context, branchID int64) (*dto.CajaResponse, error) {
	session, err := uc.repo.GetOpenByBranch(branchID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoOpenCashSession
	}
	return toResponse(session), nil
}

// Receipt genera el comprobante PDF de una caja ya CERRADA.
func (uc *UseCase) Receipt(ctx context.Context, id int64) ([]byte, error) {
	session, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if session.State != entity.CashSessionClosed {
		return nil, domain.ErrCashSessionNotClosed
	}
	return uc.receipt.GenerateCloseReceipt(ctx, session)
}

func toResponse(s *entity.CashSession) *dto.CajaResponse {
	resp := &dto.CajaResponse{
		ID:           s.ID,
		IDSucursal:   s.BranchID,
		Estado:       s.State,
		MontoInicial: s.InitialAmount,
		AbiertaEn:    s.OpenedAt,
		CerradaEn:    s.ClosedAt,
	}
	if s.FinalAmount.Valid {
		monto := s.FinalAmount.Decimal
		resp.MontoFinal = &monto
	}
	return resp
}
