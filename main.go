package main

import (
	"log"
	"net/http"
	"os"

	"github.com/cataleon/cataleon/app/cmd"
	"github.com/cataleon/cataleon/app/configs"
	"github.com/cataleon/cataleon/app/routes"
)

func main() {

	configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)

	}
	log.Println("✅ Database connected.")

	rdb := configs.OpenRedis()
	if rdb != nil {
		log.Println("✅ Redis connected.")
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("Session keys missing: %v. Run `generate-keys` and fill your .env.", err)
	}
	log.Println("✅ Session store initialized.")

	router := routes.NewRouter(db, rdb, keys)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
