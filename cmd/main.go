package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/RavenwoodRealty/api-brokerage/internal/agent"
	"github.com/RavenwoodRealty/api-brokerage/internal/auth"
	"github.com/RavenwoodRealty/api-brokerage/internal/buyer"
	"github.com/RavenwoodRealty/api-brokerage/internal/home"
	"github.com/RavenwoodRealty/api-brokerage/internal/listing"
	"github.com/RavenwoodRealty/api-brokerage/internal/office"
	"github.com/RavenwoodRealty/api-brokerage/internal/report"
	"github.com/RavenwoodRealty/api-brokerage/internal/sale"
	"github.com/RavenwoodRealty/api-brokerage/internal/seed"
	"github.com/RavenwoodRealty/api-brokerage/internal/seller"
	"github.com/RavenwoodRealty/api-brokerage/internal/utils"
	"github.com/RavenwoodRealty/api-brokerage/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; the process environment wins either way.
	_ = godotenv.Load()

	gdb, err := db.GetDB()
	if err != nil {
		log.Fatal("error connecting to database: ", err)
	}

	// Create-if-absent for all tables
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("error migrating schema: ", err)
	}

	if os.Getenv("SEED") == "true" {
		if err := seed.Load(gdb); err != nil {
			log.Fatal("error seeding database: ", err)
		}
		log.Println("demonstration dataset loaded")
	}

	adminHash, err := utils.HashPassword(getenv("ADMIN_PASSWORD", "change-me"))
	if err != nil {
		log.Fatal("error hashing admin password: ", err)
	}

	// Handlers
	authHandler := &auth.Handler{
		AdminEmail:   getenv("ADMIN_EMAIL", "admin@ravenwood.local"),
		PasswordHash: adminHash,
	}
	officeHandler := office.NewHandler(gdb)
	agentHandler := agent.NewHandler(gdb)
	homeHandler := home.NewHandler(gdb)
	sellerHandler := seller.NewHandler(gdb)
	buyerHandler := buyer.NewHandler(gdb)
	listingHandler := listing.NewHandler(gdb)
	saleHandler := sale.NewHandler(gdb)
	reportHandler := report.NewHandler(gdb)

	// Router
	r := mux.NewRouter()

	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Reference data
	r.HandleFunc("/offices", officeHandler.List).Methods("GET")
	r.HandleFunc("/offices/{id}", officeHandler.GetByID).Methods("GET")
	r.HandleFunc("/agents", agentHandler.List).Methods("GET")
	r.HandleFunc("/agents/{id}", agentHandler.GetByID).Methods("GET")
	r.HandleFunc("/homes", homeHandler.List).Methods("GET")
	r.HandleFunc("/homes/{id}", homeHandler.GetByID).Methods("GET")
	r.HandleFunc("/sellers", sellerHandler.List).Methods("GET")
	r.HandleFunc("/buyers", buyerHandler.List).Methods("GET")

	// Listings
	r.HandleFunc("/listings", listingHandler.List).Methods("GET")
	r.HandleFunc("/listings/{id}", listingHandler.GetByID).Methods("GET")
	r.Handle("/listings", auth.RequireAuth(http.HandlerFunc(listingHandler.Create))).Methods("POST")

	// Sales
	r.HandleFunc("/sales", saleHandler.List).Methods("GET")
	r.HandleFunc("/sales/{id}", saleHandler.GetByID).Methods("GET")
	r.Handle("/sales", auth.RequireAuth(http.HandlerFunc(saleHandler.Record))).Methods("POST")

	// Reports
	r.HandleFunc("/reports/offices/top-by-count", reportHandler.TopOfficesByCount).Methods("GET")
	r.HandleFunc("/reports/offices/top-by-amount", reportHandler.TopOfficesByAmount).Methods("GET")
	r.HandleFunc("/reports/agents/top", reportHandler.TopAgents).Methods("GET")
	r.HandleFunc("/reports/commissions", reportHandler.ListCommissions).Methods("GET")
	r.Handle("/reports/commissions/rebuild", auth.RequireAuth(http.HandlerFunc(reportHandler.RebuildCommissions))).Methods("POST")
	r.HandleFunc("/reports/days-on-market", reportHandler.DaysOnMarket).Methods("GET")
	r.HandleFunc("/reports/average-price", reportHandler.AveragePrice).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := getenv("PORT", "8080")
	fmt.Println("Server running on http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
