package kvstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/eletror-app/internal/domain/entity"
)

// seedItems dataset inicial del inventario (se persiste en la primera lectura).
func seedItems(now time.Time) []entity.InventoryItem {
	return []entity.InventoryItem{
		{
			ID:          "1",
			Name:        "Alternador Bosch 12V 90A",
			Description: "Alternador recondicionado para VW Golf IV / Audi A3.",
			Category:    entity.CategoryAlternadores,
			Quantity:    3,
			Price:       decimal.RequireFromString("120.00"),
			Image:       "https://images.unsplash.com/photo-1486262715619-67b85e0b08d3?auto=format&fit=crop&q=80&w=400",
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Bateria Varta E44 77Ah",
			Description: "Bateria Silver Dynamic, alta performance.",
			Category:    entity.CategoryBaterias,
			Quantity:    12,
			Price:       decimal.RequireFromString("115.50"),
			Image:       "https://images.unsplash.com/photo-1623528857434-699a22f483c7?auto=format&fit=crop&q=80&w=400",
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Motor de Arranque Valeo",
			Description: "Compatível com Renault Clio II 1.5 dCi.",
			Category:    entity.CategoryMotoresArranque,
			Quantity:    2,
			Price:       decimal.RequireFromString("85.00"),
			Image:       "https://images.unsplash.com/photo-1619642751034-765dfdf7c58e?auto=format&fit=crop&q=80&w=400",
			UpdatedAt:   now,
		},
	}
}

// seedContacts dataset inicial de contactos.
func seedContacts() []entity.Contact {
	return []entity.Contact{
		{
			ID:      "1",
			Type:    entity.ContactClient,
			Name:    "Oficina Central do Porto",
			NIF:     "501234567",
			Email:   "compras@oficinaporto.pt",
			Phone:   "223456789",
			Address: "Rua da Boavista, 123, Porto",
		},
		{
			ID:      "2",
			Type:    entity.ContactSupplier,
			Name:    "AutoPeças Norte",
			NIF:     "509876543",
			Email:   "vendas@autopecasnorte.pt",
			Phone:   "253123456",
			Address: "Zona Industrial de Braga",
		},
	}
}
