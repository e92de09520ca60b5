package dto

import "github.com/shopspring/decimal"

type WalletRequestDTO struct {
	Amount decimal.Decimal `json:"amount" validate:"money" swaggertype:"string" example:"15000.50"`
	Method string          `json:"method" validate:"required" example:"orange"`
}

type WalletResponseDTO struct {
	Message string `json:"message,omitempty" example:"Deposit successful"`
	Balance string `json:"balance" example:"265000.50"`
}
