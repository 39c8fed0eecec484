// Command token emite un JWT de desarrollo para llamar al API.
//
//	go run ./cmd/token -user 00000000-0000-0000-0000-000000000001
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/sku-inventory-api/pkg/config"
	"github.com/jhoicas/sku-inventory-api/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user_id del token (vacío = UUID aleatorio)")
	minutes := flag.Int("exp", 0, "minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if *userID == "" {
		*userID = uuid.New().String()
	}
	if *minutes <= 0 {
		*minutes = cfg.JWT.Expiration
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *userID, cfg.JWT.Issuer, *minutes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
