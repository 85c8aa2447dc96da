package interceptors

import (
	"context"

	grpcMw "github.com/grpc-ecosystem/go-grpc-middleware"
	"google.golang.org/grpc"
)

type (
	//UnaryInterceptor ...
	UnaryInterceptor = func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error)
)

//ChainUnary makes one interceptor of many, the first is the outermost one
func ChainUnary(interceptors ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return grpcMw.ChainUnaryServer(interceptors...)
}
