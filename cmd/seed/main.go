// Command seed loads the demo station catalogue into the database, or wipes
// it. Usage:
//
//	seed -i   import stations (clears existing rows first)
//	seed -d   delete all stations
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/config"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/database"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/repository"
)

var stations = []model.Station{
	{Name: "IndianOil Petrol Pump (Connaught Place)", Latitude: 28.6324, Longitude: 77.2199, Address: "Connaught Place, New Delhi", Type: model.FuelPetrol, Brand: "IndianOil", ContactPhone: "+919876543210", LogoURL: "https://upload.wikimedia.org/wikipedia/en/thumb/9/91/Indian_Oil_Logo.svg/1200px-Indian_Oil_Logo.svg.png", CurrentWaitTime: 5, AvailableSlots: 15},
	{Name: "HP Petrol Pump (Dwarka)", Latitude: 28.5992, Longitude: 77.0188, Address: "Sector 10, Dwarka, New Delhi", Type: model.FuelPetrol, Brand: "HP", ContactPhone: "+919876543211", LogoURL: "https://upload.wikimedia.org/wikipedia/en/thumb/f/f4/Hindustan_Petroleum_logo.svg/1200px-Hindustan_Petroleum_logo.svg.png", CurrentWaitTime: 10, AvailableSlots: 10},
	{Name: "Bharat Petroleum (Gurgaon)", Latitude: 28.4595, Longitude: 77.0266, Address: "Sector 29, Gurgaon, Haryana", Type: model.FuelDiesel, Brand: "BP", ContactPhone: "+919876543212", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e6/Bharat_Petroleum_Logo.svg/1200px-Bharat_Petroleum_Logo.svg.png", CurrentWaitTime: 7, AvailableSlots: 12},
	{Name: "Tata Power EV Charging Station (Noida)", Latitude: 28.5355, Longitude: 77.3910, Address: "Sector 62, Noida, Uttar Pradesh", Type: model.FuelEV, Brand: "TataPower", ContactPhone: "+919876543213", LogoURL: "https://upload.wikimedia.org/wikipedia/en/thumb/d/d4/Tata_Power_Logo.svg/1200px-Tata_Power_Logo.svg.png", CurrentWaitTime: 15, AvailableSlots: 8},
	{Name: "IndianOil CNG Station (Ghaziabad)", Latitude: 28.6692, Longitude: 77.4538, Address: "Vaishali, Ghaziabad, Uttar Pradesh", Type: model.FuelCNG, Brand: "IndianOil", ContactPhone: "+919876543214", LogoURL: "https://upload.wikimedia.org/wikipedia/en/thumb/9/91/Indian_Oil_Logo.svg/1200px-Indian_Oil_Logo.svg.png", CurrentWaitTime: 8, AvailableSlots: 7},
	{Name: "Reliance Petrol Pump (Faridabad)", Latitude: 28.4089, Longitude: 77.3178, Address: "Sector 21D, Faridabad, Haryana", Type: model.FuelPetrol, Brand: "Reliance", ContactPhone: "+919876543215", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c8/Reliance_Industries_Logo.svg/1200px-Reliance_Industries_Logo.svg.png", CurrentWaitTime: 6, AvailableSlots: 14},
	{Name: "Nayara Energy (Delhi Cantt)", Latitude: 28.6010, Longitude: 77.1278, Address: "Delhi Cantt, New Delhi", Type: model.FuelDiesel, Brand: "Nayara", ContactPhone: "+919876543216", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e4/Nayara_Energy_Logo.svg/1200px-Nayara_Energy_Logo.svg.png", CurrentWaitTime: 9, AvailableSlots: 11},
	{Name: "ChargeGrid EV (Delhi Airport)", Latitude: 28.5562, Longitude: 77.1000, Address: "IGI Airport, New Delhi", Type: model.FuelEV, Brand: "ChargeGrid", ContactPhone: "+919876543217", LogoURL: "https://www.chargegrid.in/images/logo.png", CurrentWaitTime: 20, AvailableSlots: 5},
	{Name: "HP CNG Station (Rohini)", Latitude: 28.7237, Longitude: 77.1189, Address: "Rohini, New Delhi", Type: model.FuelCNG, Brand: "HP", ContactPhone: "+919876543218", LogoURL: "https://upload.wikimedia.org/wikipedia/en/thumb/f/f4/Hindustan_Petroleum_logo.svg/1200px-Hindustan_Petroleum_logo.svg.png", CurrentWaitTime: 12, AvailableSlots: 6},
	{Name: "IndianOil Petrol Pump (Mumbai)", Latitude: 19.0760, Longitude: 72.8777, Address: "Bandra, Mumbai, Maharashtra", Type: model.FuelPetrol, Brand: "IndianOil", ContactPhone: "+919876543219", LogoURL: "https://upload.wikimedia.org/wikipedia/en/thumb/9/91/Indian_Oil_Logo.svg/1200px-Indian_Oil_Logo.svg.png", CurrentWaitTime: 7, AvailableSlots: 13},
	{Name: "BP Diesel Station (Bangalore)", Latitude: 12.9716, Longitude: 77.5946, Address: "MG Road, Bangalore, Karnataka", Type: model.FuelDiesel, Brand: "BP", ContactPhone: "+919876543220", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e6/Bharat_Petroleum_Logo.svg/1200px-Bharat_Petroleum_Logo.svg.png", CurrentWaitTime: 11, AvailableSlots: 9},
	{Name: "Tata Power EV Charging (Pune)", Latitude: 18.5204, Longitude: 73.8567, Address: "Koregaon Park, Pune, Maharashtra", Type: model.FuelEV, Brand: "TataPower", ContactPhone: "+919876543221", LogoURL: "https://upload.wikimedia.org/wikipedia/en/thumb/d/d4/Tata_Power_Logo.svg/1200px-Tata_Power_Logo.svg.png", CurrentWaitTime: 18, AvailableSlots: 7},
}

func main() {
	if len(os.Args) < 2 || (os.Args[1] != "-i" && os.Args[1] != "-d") {
		log.Fatal("usage: seed -i (to import) or -d (to delete)")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM stations`); err != nil {
		log.Fatalf("clear stations: %v", err)
	}
	if os.Args[1] == "-d" {
		log.Println("data destroyed")
		return
	}

	repo := repository.NewStationRepo(db)
	for _, s := range stations {
		if _, err := repo.Create(ctx, s); err != nil {
			log.Fatalf("insert %q: %v", s.Name, err)
		}
	}
	log.Printf("data imported: %d stations", len(stations))
}
