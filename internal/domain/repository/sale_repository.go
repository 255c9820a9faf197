package repository

import "github.com/tu-usuario/pos-cloud/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
}
