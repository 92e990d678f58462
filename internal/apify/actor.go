package apify

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jleung/sourcing-radar/internal/model"
)

// RunActorSync runs an actor with the given input, waits for it to finish,
// and returns its dataset items in the order the actor pushed them. limit
// caps the number of returned items; 0 means no cap.
//
// Uses the run-sync-get-dataset-items endpoint, so one round trip covers
// the run and the result collection. The actor-side timeout is set from
// the request context's deadline when one is present.
func (c *Client) RunActorSync(ctx context.Context, actorID string, input map[string]any, limit int) ([]model.RawItem, error) {
	// Path form of an actor ID replaces "user/name" with "user~name".
	path := "/acts/" + strings.ReplaceAll(actorID, "/", "~") + "/run-sync-get-dataset-items"

	query := url.Values{}
	query.Set("format", "json")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if deadline, ok := ctx.Deadline(); ok {
		secs := int(time.Until(deadline).Seconds())
		if secs > 0 {
			query.Set("timeout", strconv.Itoa(secs))
		}
	}

	start := time.Now()

	var items []model.RawItem
	if err := c.post(ctx, path, query, input, &items); err != nil {
		return nil, err
	}

	c.logger.Debug("actor run complete",
		"actor", actorID,
		"items", len(items),
		"duration", time.Since(start),
	)

	return items, nil
}
