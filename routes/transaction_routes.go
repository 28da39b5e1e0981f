package routes

import (
	"github.com/gofiber/fiber/v2"
)

func TransactionRoutes(r fiber.Router, d *Deps) {
	tx := r.Group("/transactions")

	// Both roles may sell. Listing is scoped in the controller: admin sees
	// everything, kasir only their own.
	tx.Post("/", d.TxCtl.Create)
	tx.Get("/", d.TxCtl.List)
	tx.Get("/:id", d.TxCtl.Get)

	// No PUT or DELETE: transactions are immutable once committed.
}
