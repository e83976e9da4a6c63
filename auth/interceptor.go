package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "booking-lab/proto/booking"
)

// Methods that do not require JWT authentication.
// Using generated constants from the proto package for type-safety.
var publicMethods = map[string]struct{}{
	pb.BookingService_Token_FullMethodName: {},
}

type contextKey string

const OwnerIDKey contextKey = "owner_id"

// AuthInterceptor handles JWT validation for incoming gRPC calls.
// The Watch stream is not covered here: displays read public state
// and connect without credentials, like the TCP feed.
func AuthInterceptor(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublicMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	// Expecting the standard "Bearer <token>" format
	tokenStr := strings.TrimPrefix(values[0], "Bearer ")

	claims, err := ValidateToken(tokenStr)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}

	// Downstream handlers attribute every mutation to this owner.
	newCtx := context.WithValue(ctx, OwnerIDKey, claims.OwnerID)

	return handler(newCtx, req)
}

// OwnerFromContext returns the authenticated owner id, if any.
func OwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(OwnerIDKey).(string)
	return owner, ok && owner != ""
}

func isPublicMethod(method string) bool {
	_, ok := publicMethods[method]
	return ok
}
