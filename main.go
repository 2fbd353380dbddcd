package main

import (
	"log"
	"net/http"
	"os"
	"signoff/account"
	"signoff/audit"
	"signoff/bizerror"
	"signoff/client/blob"
	"signoff/client/es"
	"signoff/domain"
	"signoff/domain/category"
	"signoff/domain/client"
	"signoff/domain/contract"
	"signoff/domain/project"
	"signoff/domain/ratecard"
	"signoff/domain/review"
	"signoff/indices"
	"signoff/infra/tracing"
	"signoff/persistence"
	"signoff/session"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("service start")

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		log.Fatalf("parse database config failed %v\n", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			log.Fatalf("failed to prepare database %v\n", err)
		}
	}

	// connect database
	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		log.Fatalf("database connection failed %v\n", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	err = ds.GormDB().AutoMigrate(&domain.Project{}, &domain.ProjectVersion{},
		&domain.ContractDocument{}, &domain.JobCategory{}, &domain.RateCard{},
		&domain.ApprovalEvent{}, &domain.Client{}, &account.User{}, &audit.AuditRecord{}).Error
	if err != nil {
		log.Fatalf("database migration failed %v\n", err)
	}

	if err := ratecard.SeedRateCards(); err != nil {
		log.Fatalf("rate card seeding failed %v\n", err)
	}

	if closer := tracing.Bootstrap(); closer != nil {
		defer closer.Close()
	}
	blob.Bootstrap()
	es.CreateClientFromEnv()
	indices.Bootstrap()

	engine := gin.Default()
	engine.Use(tracing.TracingIngress(), bizerror.ErrorHandling())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "signoff")
	})

	secured := []gin.HandlerFunc{session.HeaderAuthFilter()}
	project.RegisterProjectsRestApis(engine, secured...)
	review.RegisterReviewsRestApis(engine, secured...)
	contract.RegisterContractsRestApis(engine, secured...)
	category.RegisterJobCategoriesRestApis(engine, secured...)
	ratecard.RegisterRateCardsRestApis(engine, secured...)
	client.RegisterClientsRestApis(engine, secured...)
	account.RegisterUsersRestApis(engine, secured...)
	audit.RegisterAuditRestApis(engine, secured...)
	indices.RegisterAuditSearchRestApis(engine, secured...)

	port := os.Getenv("PORT")
	if port == "" {
		port = "80"
	}
	err = engine.Run(":" + port)
	if err != nil {
		panic(err)
	}
}
