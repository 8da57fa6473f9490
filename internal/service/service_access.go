package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

// listAccess decides whether the access claims carried by a request permit
// an action on a list.
type listAccess struct {
	lists store.ListStorage
}

// authorize returns the list when action is permitted. A list that does not
// require a password for action is open to everyone; otherwise the request
// needs a token bound to listID whose action covers the required one.
func (a listAccess) authorize(ctx context.Context, listID string, action models.AccessAction) (models.List, error) {
	list, err := a.lists.FindListByID(ctx, listID)
	if err != nil {
		return models.List{}, fmt.Errorf("list %s: %w", listID, err)
	}

	required := list.ViewRequiresPassword
	if action == models.AccessEdit {
		required = list.EditRequiresPassword
	}
	if !required {
		return list, nil
	}

	claims, ok := utils.GetAccessFromContext(ctx)
	if !ok || claims.ListID() != listID || !claims.Action.Allows(action) {
		logger.FromContext(ctx).Debug().
			Str("func", "listAccess.authorize").
			Str("list_id", listID).
			Str("action", string(action)).
			Msg("access denied")
		return list, ErrPasswordRequired
	}
	return list, nil
}
