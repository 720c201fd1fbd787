package response

import (
	"petstay-bff/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CountdownResponse struct {
	OrderID          string `json:"orderId"`
	RemainingSeconds int64  `json:"remainingSeconds"`
}

type CountdownListItem struct {
	OrderID          string `json:"orderId"`
	RemainingSeconds int64  `json:"remainingSeconds"`
	ExpireAt         string `json:"expireAt"`
}

func FromCountdownViews(views []queries.CountdownView) []CountdownListItem {
	items := make([]CountdownListItem, len(views))
	_ = copier.Copy(&items, &views)
	return items
}
