package appointment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	domain "github.com/serenitylabs/medspa-scheduler/internal/domain/appointment"
	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

// resolveServices validates a service selection against one medspa and
// totals it. Ids are deduplicated first; every id must resolve, and every
// resolved service must belong to the requested medspa.
func resolveServices(
	ctx context.Context,
	repo domain.Repository,
	medspaID string,
	serviceIDs []string,
) (services []models.Service, totalPrice int, totalDuration int, err error) {

	ids := domain.DedupeIDs(serviceIDs)

	found, err := repo.FindServicesByIDs(ctx, ids)
	if err != nil {
		return nil, 0, 0, err
	}

	if len(found) != len(ids) {
		byID := make(map[string]struct{}, len(found))
		for _, s := range found {
			byID[s.ID] = struct{}{}
		}
		var missing []string
		for _, id := range ids {
			if _, ok := byID[id]; !ok {
				missing = append(missing, id)
			}
		}
		sort.Strings(missing)
		return nil, 0, 0, httperr.NotFoundError(fmt.Sprintf(
			"service(s) not found: %s", strings.Join(missing, ", "),
		))
	}

	for _, s := range found {
		if s.MedspaID != medspaID {
			return nil, 0, 0, httperr.InvalidRequestError("all services must belong to the same medspa")
		}
	}

	// Preserve the request's first-occurrence order in the result.
	byID := make(map[string]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	ordered := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, byID[id])
	}

	totalPrice, totalDuration = domain.Totals(ordered)
	return ordered, totalPrice, totalDuration, nil
}

func serviceIDsOf(services []models.Service) []string {
	ids := make([]string, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}
	return ids
}
