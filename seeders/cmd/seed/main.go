package main

import (
	"context"
	"flag"
	"log"

	"servicos-dashboard/pkg/config"
	"servicos-dashboard/pkg/database/postgresql"
	"servicos-dashboard/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 SEEDERS (povoamento do banco)               ")
	log.Println("======================================================")

	adminEmail := flag.String("admin-email", "admin@servicos.local", "E-mail da credencial do administrador")
	adminSenha := flag.String("admin-senha", "admin123", "Senha da credencial do administrador")
	withSamples := flag.Bool("samples", false, "Inserir serviços de exemplo")
	flag.Parse()

	cfg := config.New()
	log.Println("📦 DSN em uso:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	ctx := context.Background()

	if err := seeders.SeedAdminCredential(ctx, dbPool, *adminEmail, *adminSenha); err != nil {
		log.Fatalf("❌ Erro ao criar credencial: %v", err)
	}

	if *withSamples {
		if err := seeders.SeedSampleServices(ctx, dbPool); err != nil {
			log.Fatalf("❌ Erro ao inserir exemplos: %v", err)
		}
	}

	log.Println("✅ Seeders concluídos.")
	log.Println("======================================================")
}
