package http

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodifica el body JSON de forma estricta: campos desconocidos o
// con tipo equivocado se rechazan antes de tocar cualquier caso de uso.
func parseBody(c *fiber.Ctx, out any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
