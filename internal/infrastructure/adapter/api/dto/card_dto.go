package dto

import (
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// IssueCardRequest represents the API request for issuing a card
type IssueCardRequest struct {
	CardNumber     string `json:"cardNumber" binding:"required,cardnumber"`
	HolderName     string `json:"holderName" binding:"required,max=255"`
	ExpiryDate     string `json:"expiryDate" binding:"required,datetime=2006-01-02"`
	InitialBalance string `json:"balance" binding:"omitempty,amount"`
}

// CardResponse is the display-safe representation of a card
type CardResponse struct {
	ID               uint64 `json:"id"`
	MaskedCardNumber string `json:"maskedCardNumber"`
	HolderName       string `json:"holderName"`
	ExpiryDate       string `json:"expiryDate"`
	Status           string `json:"status"`
	Balance          string `json:"balance"`
	OwnerID          uint64 `json:"ownerId"`
}

// NewCardResponse converts a card for output
func NewCardResponse(card *entity.Card) CardResponse {
	return CardResponse{
		ID:               card.ID,
		MaskedCardNumber: card.MaskedNumber(),
		HolderName:       card.HolderName,
		ExpiryDate:       card.ExpiryDate.Format(DateLayout),
		Status:           string(card.Status),
		Balance:          card.GetBalance(),
		OwnerID:          card.OwnerID,
	}
}

// NewCardResponses converts a list of cards
func NewCardResponses(cards []*entity.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, NewCardResponse(card))
	}
	return out
}

// CardFilterQuery binds the filter parameters. Every field is optional.
type CardFilterQuery struct {
	PageQuery
	Status         string `form:"status"`
	ExpiryDateFrom string `form:"expiryDateFrom" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDateTo   string `form:"expiryDateTo" binding:"omitempty,datetime=2006-01-02"`
	MinBalance     string `form:"minBalance" binding:"omitempty,amount"`
	MaxBalance     string `form:"maxBalance" binding:"omitempty,amount"`
	UserID         uint64 `form:"userId"`
}

// ToFilter converts the query into a domain filter. UserID is ignored here;
// the caller decides the owner scope.
func (q CardFilterQuery) ToFilter() (entity.CardFilter, error) {
	var filter entity.CardFilter

	if q.Status != "" {
		status, err := entity.ParseCardStatus(q.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if q.ExpiryDateFrom != "" {
		from, err := time.Parse(DateLayout, q.ExpiryDateFrom)
		if err != nil {
			return filter, err
		}
		filter.ExpiryFrom = &from
	}
	if q.ExpiryDateTo != "" {
		to, err := time.Parse(DateLayout, q.ExpiryDateTo)
		if err != nil {
			return filter, err
		}
		filter.ExpiryTo = &to
	}
	if q.MinBalance != "" {
		minBalance, err := entity.ValidateAndConvertAmount(q.MinBalance)
		if err != nil {
			return filter, err
		}
		filter.MinBalance = &minBalance
	}
	if q.MaxBalance != "" {
		maxBalance, err := entity.ValidateAndConvertAmount(q.MaxBalance)
		if err != nil {
			return filter, err
		}
		filter.MaxBalance = &maxBalance
	}

	return filter, nil
}
