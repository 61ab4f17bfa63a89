package database

import (
	"context"
	"fmt"

	"assettracker/src/config"
	aws_handler "assettracker/src/utils/aws"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BuildDSN assembles the connection string from the SQL config section,
// preferring an explicit connection_string when one is provided.
func BuildDSN(cfg *config.Config) string {
	dsn := cfg.Databases.SQL.ConnectionString
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Databases.SQL.Host,
			cfg.Databases.SQL.Username,
			cfg.Databases.SQL.Password,
			cfg.Databases.SQL.Database,
			cfg.Databases.SQL.Port)
	}
	return dsn
}

func SetupDB(cfg *config.Config) (*pgxpool.Pool, error) {
	if secretID := cfg.Databases.SQL.PasswordSecret; secretID != "" {
		awsHandler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
		if err != nil {
			return nil, err
		}
		password, err := awsHandler.SecretManager.GetSecretValue(secretID)
		if err != nil {
			return nil, err
		}
		cfg.Databases.SQL.Password = password
	}

	poolConfig, err := pgxpool.ParseConfig(BuildDSN(cfg))
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = cfg.Databases.SQL.MaxConns
	if poolConfig.MaxConns == 0 {
		poolConfig.MaxConns = 5
	}
	poolConfig.MinConns = cfg.Databases.SQL.MinConns
	if poolConfig.MinConns == 0 {
		poolConfig.MinConns = 1
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %v\nPlease ensure the database is running and accessible with the provided credentials", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v\nPlease check your database configuration and ensure it's running", err)
	}
	return pool, nil
}
