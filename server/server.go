package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/wargital/api/handlers"
	"github.com/wargital/api/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes() *Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	router.HandleFunc("/register", handlers.Register).Methods("POST")
	router.HandleFunc("/login", handlers.Login).Methods("POST")
	router.HandleFunc("/refresh", handlers.RefreshToken).Methods("POST")
	router.Handle("/logout", middlewares.AuthMiddleware(http.HandlerFunc(handlers.Logout))).Methods("POST")
	router.Handle("/me", middlewares.AuthMiddleware(http.HandlerFunc(handlers.Me))).Methods("GET")

	router.HandleFunc("/restaurants", handlers.ListRestaurants).Methods("GET")
	router.HandleFunc("/restaurants/{id}", handlers.GetRestaurant).Methods("GET")

	// checkout tolerates anonymous buyers
	orderRoutes := router.PathPrefix("/order").Subrouter()
	orderRoutes.Use(middlewares.OptionalAuthMiddleware)
	orderRoutes.HandleFunc("", handlers.PlaceOrder).Methods("POST")
	orderRoutes.HandleFunc("", handlers.ListOrders).Methods("GET")

	userRoutes := router.PathPrefix("/user").Subrouter()
	userRoutes.Use(middlewares.AuthMiddleware)

	userRoutes.HandleFunc("/profile", handlers.UpdateProfile).Methods("PUT")

	userRoutes.HandleFunc("/addresses", handlers.ListAddresses).Methods("GET")
	userRoutes.HandleFunc("/addresses", handlers.CreateAddress).Methods("POST")
	userRoutes.HandleFunc("/addresses/{id}", handlers.UpdateAddress).Methods("PUT")
	userRoutes.HandleFunc("/addresses/{id}", handlers.DeleteAddress).Methods("DELETE")

	userRoutes.HandleFunc("/payment-methods", handlers.ListPaymentMethods).Methods("GET")
	userRoutes.HandleFunc("/payment-methods", handlers.CreatePaymentMethod).Methods("POST")
	userRoutes.HandleFunc("/payment-methods/{id}", handlers.UpdatePaymentMethod).Methods("PUT")
	userRoutes.HandleFunc("/payment-methods/{id}", handlers.DeletePaymentMethod).Methods("DELETE")

	userRoutes.HandleFunc("/favorites", handlers.ListFavorites).Methods("GET")
	userRoutes.HandleFunc("/favorites", handlers.CreateFavorite).Methods("POST")
	userRoutes.HandleFunc("/favorites/{restaurantId}", handlers.DeleteFavorite).Methods("DELETE")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           cors.Default().Handler(svr.Router),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
