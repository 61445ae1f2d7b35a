package usecase

//go:generate mockgen -source=pending_review_usecase.go -destination=../adapter/http/handlers/mocks/mock_pending_review_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidPendingID      = errors.New("invalid pending product id")
	ErrPendingNotFound       = errors.New("pending product not found")
	ErrPendingAlreadyHandled = errors.New("pending product already reviewed")
	ErrInvalidPendingStatus  = errors.New("invalid pending status")
	ErrCategoryRequired      = errors.New("category is required to approve a product")
	ErrInvalidPrice          = errors.New("invalid price")
)

// ApproveInput carries what the reviewer fills in before a candidate becomes
// a catalog entry. Category is mandatory; price defaults to zero.
type ApproveInput struct {
	Category     string
	NetPrice     *decimal.Decimal
	Unit         *entities.UnitType
	DeliveryType *entities.DeliveryType
	DeliveryDays *int
}

// ApprovalResult pairs the reviewed record with the catalog entry it produced
// or matched.
type ApprovalResult struct {
	Record entities.PendingReviewRecord
	Entry  entities.CatalogEntry
}

// IPendingReviewUseCase exposes the review queue for extracted candidates.
type IPendingReviewUseCase interface {
	List(ctx context.Context, status entities.PendingStatus) ([]entities.PendingReviewRecord, error)
	CountPending(ctx context.Context) (int, error)
	Approve(ctx context.Context, id string, in ApproveInput) (ApprovalResult, error)
	Reject(ctx context.Context, id string) (entities.PendingReviewRecord, error)
}

type PendingReviewUseCase struct {
	repo    interfaces.IPendingProductRepository
	catalog interfaces.ICatalogRepository
	skus    interfaces.ISkuSequencer
}

var _ IPendingReviewUseCase = (*PendingReviewUseCase)(nil)

func NewPendingReviewUseCase(repo interfaces.IPendingProductRepository, catalog interfaces.ICatalogRepository, skus interfaces.ISkuSequencer) *PendingReviewUseCase {
	return &PendingReviewUseCase{repo: repo, catalog: catalog, skus: skus}
}

// List returns the records in the given status; an empty status means pending.
func (u *PendingReviewUseCase) List(ctx context.Context, status entities.PendingStatus) ([]entities.PendingReviewRecord, error) {
	if status == "" {
		status = entities.PendingStatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidPendingStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *PendingReviewUseCase) CountPending(ctx context.Context) (int, error) {
	return u.repo.CountByStatus(ctx, entities.PendingStatusPending)
}

// Approve inserts the candidate into the catalog with a fresh SKU and marks
// the record approved. If the name is already in the catalog the existing
// entry is kept and only the record changes status.
func (u *PendingReviewUseCase) Approve(ctx context.Context, id string, in ApproveInput) (ApprovalResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ApprovalResult{}, ErrInvalidPendingID
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return ApprovalResult{}, ErrCategoryRequired
	}
	if in.NetPrice != nil && in.NetPrice.IsNegative() {
		return ApprovalResult{}, ErrInvalidPrice
	}

	rec, err := u.reviewable(ctx, id)
	if err != nil {
		return ApprovalResult{}, err
	}

	item := entities.LineItem{
		Name:         strings.TrimSpace(rec.Name),
		Brand:        rec.Brand,
		Description:  rec.Description,
		Unit:         rec.SuggestedUnit,
		NetPrice:     decimal.Zero,
		DeliveryType: entities.DeliveryImmediate,
		Category:     category,
	}
	patch := entities.LineItemPatch{NetPrice: in.NetPrice, Unit: in.Unit, DeliveryType: in.DeliveryType, DeliveryDays: in.DeliveryDays}
	item = patch.Apply(item)

	entry, err := u.catalog.FindByName(ctx, item.Name)
	if err != nil {
		return ApprovalResult{}, err
	}
	if entry.ID == "" {
		entry, err = u.insert(ctx, item)
		if err != nil {
			return ApprovalResult{}, err
		}
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.PendingStatusPending, entities.PendingStatusApproved)
	if err != nil {
		return ApprovalResult{}, err
	}
	if updated.ID == "" {
		return ApprovalResult{}, ErrPendingAlreadyHandled
	}
	zap.L().Info("pending product approved",
		zap.String("pending_id", id), zap.String("catalog_id", entry.ID), zap.String("sku", entry.SKU))
	return ApprovalResult{Record: updated, Entry: entry}, nil
}

func (u *PendingReviewUseCase) insert(ctx context.Context, item entities.LineItem) (entities.CatalogEntry, error) {
	entry := entities.CatalogEntryFromLineItem(uuid.NewString(), item, "", time.Now().UTC())
	sku, err := u.skus.NextSku(ctx, entry.Brand, entry.Category)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	entry.SKU = sku
	created, err := u.catalog.Create(ctx, entry)
	if errors.Is(err, interfaces.ErrCatalogNameTaken) {
		return u.catalog.FindByName(ctx, entry.Name)
	}
	return created, err
}

func (u *PendingReviewUseCase) Reject(ctx context.Context, id string) (entities.PendingReviewRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PendingReviewRecord{}, ErrInvalidPendingID
	}
	if _, err := u.reviewable(ctx, id); err != nil {
		return entities.PendingReviewRecord{}, err
	}
	updated, err := u.repo.UpdateStatus(ctx, id, entities.PendingStatusPending, entities.PendingStatusRejected)
	if err != nil {
		return entities.PendingReviewRecord{}, err
	}
	if updated.ID == "" {
		return entities.PendingReviewRecord{}, ErrPendingAlreadyHandled
	}
	return updated, nil
}

func (u *PendingReviewUseCase) reviewable(ctx context.Context, id string) (entities.PendingReviewRecord, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PendingReviewRecord{}, err
	}
	if rec.ID == "" {
		return entities.PendingReviewRecord{}, ErrPendingNotFound
	}
	if rec.Status != entities.PendingStatusPending {
		return entities.PendingReviewRecord{}, ErrPendingAlreadyHandled
	}
	return rec, nil
}
