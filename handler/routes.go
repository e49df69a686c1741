package handler

import (
	"net/http"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/lambda-feedback/samplefn/config"
	"github.com/lambda-feedback/samplefn/internal/server"
)

func NewFunctionRoute(handler *FunctionHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}

func NewHealthRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("GET /health", http.HandlerFunc(HealthHandler))
}

func NewRPCRoute(rpcServer *rpc.Server, cfg config.Config) server.HttpHandlerResult {
	return server.AsHttpHandler("POST /rpc", newRPCHandler(rpcServer, cfg))
}
