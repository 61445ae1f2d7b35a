package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ICatalogReconciler makes sure every named line item exists in the catalog.
type ICatalogReconciler interface {
	Reconcile(ctx context.Context, items []entities.LineItem) ([]entities.LineItem, []entities.ReconciliationWarning)
}

// CatalogReconciler walks the items one at a time, in order. Two items with
// the same new name must not both miss the lookup, so this loop never fans out.
type CatalogReconciler struct {
	catalog interfaces.ICatalogRepository
	skus    interfaces.ISkuSequencer
	log     *zap.Logger
}

var _ ICatalogReconciler = (*CatalogReconciler)(nil)

func NewCatalogReconciler(catalog interfaces.ICatalogRepository, skus interfaces.ISkuSequencer, log *zap.Logger) *CatalogReconciler {
	if log == nil {
		log = zap.L()
	}
	return &CatalogReconciler{catalog: catalog, skus: skus, log: log.Named("reconciler")}
}

// Reconcile returns a copy of items with SKUs attached. Items whose catalog
// step failed keep going without a SKU and are reported as warnings.
func (r *CatalogReconciler) Reconcile(ctx context.Context, items []entities.LineItem) ([]entities.LineItem, []entities.ReconciliationWarning) {
	out := make([]entities.LineItem, len(items))
	copy(out, items)

	var warnings []entities.ReconciliationWarning
	for i := range out {
		if strings.TrimSpace(out[i].Name) == "" {
			continue
		}
		sku, warn := r.resolve(ctx, out[i])
		if warn != nil {
			r.log.Warn("catalog reconciliation failed",
				zap.String("item_id", warn.ItemID),
				zap.String("item_name", warn.ItemName),
				zap.String("stage", string(warn.Stage)),
				zap.String("cause", warn.Cause),
			)
			warnings = append(warnings, *warn)
			out[i].SKU = ""
			continue
		}
		out[i].SKU = sku
	}
	return out, warnings
}

func (r *CatalogReconciler) resolve(ctx context.Context, item entities.LineItem) (string, *entities.ReconciliationWarning) {
	name := strings.TrimSpace(item.Name)
	warn := func(stage entities.ReconciliationStage, err error) *entities.ReconciliationWarning {
		return &entities.ReconciliationWarning{ItemID: item.ID, ItemName: name, Stage: stage, Cause: err.Error()}
	}

	existing, err := r.catalog.FindByName(ctx, name)
	if err != nil {
		return "", warn(entities.StageLookup, err)
	}
	if existing.ID != "" {
		return existing.SKU, nil
	}

	item.Name = name
	entry := entities.CatalogEntryFromLineItem(uuid.NewString(), item, "", time.Now().UTC())
	sku, err := r.skus.NextSku(ctx, entry.Brand, entry.Category)
	if err != nil {
		return "", warn(entities.StageSku, err)
	}
	entry.SKU = sku

	if _, err := r.catalog.Create(ctx, entry); err != nil {
		if !errors.Is(err, interfaces.ErrCatalogNameTaken) {
			return "", warn(entities.StageInsert, err)
		}
		// Another finalization inserted the same name first; its SKU wins.
		winner, ferr := r.catalog.FindByName(ctx, name)
		if ferr != nil {
			return "", warn(entities.StageLookup, ferr)
		}
		if winner.ID == "" {
			return "", warn(entities.StageInsert, err)
		}
		r.log.Info("catalog name taken concurrently, reusing sku",
			zap.String("name", name), zap.String("sku", winner.SKU), zap.String("discarded_sku", sku))
		return winner.SKU, nil
	}
	return sku, nil
}
