package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"siyapi/engine"
	"siyapi/models"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

const (
	TypeColorNormalize = "closet:normalize_color"
	TypeColorRescan    = "closet:rescan_colors"
)

type ColorNormalizePayload struct {
	ItemID uint `json:"item_id"`
}

// Client initializes an asynq client for enqueuing tasks
func NewClient() (*asynq.Client, error) {
	return asynq.NewClient(asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")}), nil
}

func NewColorNormalizeTask(itemID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(ColorNormalizePayload{ItemID: itemID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeColorNormalize, payload), nil
}

func NewColorRescanTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeColorRescan, nil), nil
}

// normalizeItemColor rebuilds the derived color fields from the stored hex.
// The hex is the source of truth, everything else is a cache of the engine's
// classification at write time.
func normalizeItemColor(item *models.ClosetItem) (bool, error) {
	color, err := engine.ParseHexColor(item.ColorHex)
	if err != nil {
		return false, err
	}
	changed := item.ColorHex != color.Hex ||
		item.ColorName != color.Name ||
		item.ColorNeutral != color.IsNeutral ||
		item.ColorHue != color.HSL.H ||
		item.ColorSat != color.HSL.S ||
		item.ColorLight != color.HSL.L
	item.ColorHex = color.Hex
	item.ColorName = color.Name
	item.ColorNeutral = color.IsNeutral
	item.ColorHue = color.HSL.H
	item.ColorSat = color.HSL.S
	item.ColorLight = color.HSL.L
	return changed, nil
}

// HandleColorNormalizeTask re-derives the color name, HSL and neutral flag
// for a single closet item.
func HandleColorNormalizeTask(ctx context.Context, t *asynq.Task, db *gorm.DB) error {
	var payload ColorNormalizePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}
	fmt.Printf("[Item: %v] Color normalize start\n", payload.ItemID)

	var item models.ClosetItem
	res := db.First(&item, payload.ItemID)
	if res.Error != nil {
		// the item may have been deleted between enqueue and processing,
		// that is not worth a retry
		if res.Error == gorm.ErrRecordNotFound {
			fmt.Printf("[Item: %v] Color normalize skipped, item gone\n", payload.ItemID)
			return nil
		}
		sentry.CaptureException(fmt.Errorf("[QUEUE] Error on retrieving item for color normalize %v", payload.ItemID))
		return res.Error
	}

	changed, err := normalizeItemColor(&item)
	if err != nil {
		// a bad hex in the row cannot fix itself on retry
		sentry.CaptureException(fmt.Errorf("[Item: %v] Invalid stored hex %q: %v", payload.ItemID, item.ColorHex, err))
		return nil
	}
	if !changed {
		fmt.Printf("[Item: %v] Color already normalized (%s %s)\n", payload.ItemID, item.ColorHex, item.ColorName)
		return nil
	}

	if err := db.Save(&item).Error; err != nil {
		sentry.CaptureException(fmt.Errorf("[Item: %v] Error on saving normalized color: %v", payload.ItemID, err))
		return err
	}
	fmt.Printf("[Item: %v] Color normalized to %s %q neutral=%v\n", payload.ItemID, item.ColorHex, item.ColorName, item.ColorNeutral)
	return nil
}

// HandleColorRescanTask sweeps the whole closet table and re-derives color
// fields for every item. Scheduled periodically so that stale rows written
// before a classification change converge without manual intervention.
func HandleColorRescanTask(ctx context.Context, t *asynq.Task, db *gorm.DB) error {
	fmt.Printf("[Rescan] Color rescan start\n")

	var scanned, updated, failed int
	var items []models.ClosetItem
	res := db.FindInBatches(&items, 500, func(tx *gorm.DB, batch int) error {
		for i := range items {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			scanned++
			changed, err := normalizeItemColor(&items[i])
			if err != nil {
				failed++
				sentry.CaptureException(fmt.Errorf("[Rescan] Item %v invalid stored hex %q: %v", items[i].ID, items[i].ColorHex, err))
				continue
			}
			if !changed {
				continue
			}
			if err := db.Save(&items[i]).Error; err != nil {
				failed++
				sentry.CaptureException(fmt.Errorf("[Rescan] Item %v error on saving: %v", items[i].ID, err))
				continue
			}
			updated++
		}
		return nil
	})
	if res.Error != nil {
		sentry.CaptureException(fmt.Errorf("[Rescan] Error on scanning closet items: %v", res.Error))
		return res.Error
	}

	fmt.Printf("[Rescan] Color rescan finished, scanned: %d, updated: %d, failed: %d\n", scanned, updated, failed)
	return nil
}
