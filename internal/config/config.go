// Package config centraliza a leitura das variáveis de ambiente da API.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contém os parâmetros de execução da API de ordens.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	DBHost       string `env:"DB_HOST" envDefault:"localhost"`
	DBPort       uint   `env:"DB_PORT" envDefault:"5432"`
	DBName       string `env:"DB_NAME" envDefault:"ordens"`
	DBUser       string `env:"DB_USER" envDefault:"postgres"`
	DBPassword   string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBSSLDisable bool   `env:"DB_SSL_MODE_DISABLE" envDefault:"true"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"api-ordens-secret"`

	// URL do webhook que recebe os eventos de transição de status.
	// Vazio desliga o envio (os eventos continuam sendo gerados e logados).
	WebhookURL string `env:"WEBHOOK_URL"`

	// Enquanto true, a lista estruturada de itens também é gravada nos
	// campos de texto legados (peca/servico). Desligar encerra a migração.
	LegadoDualWrite bool `env:"LEGADO_DUAL_WRITE" envDefault:"true"`
}

// Parse lê a configuração a partir das variáveis de ambiente.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
