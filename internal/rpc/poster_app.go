package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-poster-keeper/models"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "poster.PosterApp"

// Full method names.
const (
	MethodRegisterAccount = "/" + ServiceName + "/RegisterAccount"
	MethodLoginAccount    = "/" + ServiceName + "/LoginAccount"
	MethodPlacePoster     = "/" + ServiceName + "/PlacePoster"
	MethodRemovePoster    = "/" + ServiceName + "/RemovePoster"
	MethodRetrieveUpdates = "/" + ServiceName + "/RetrieveUpdates"
)

// Metadata keys of poster.PosterApp calls.
const (
	// AuthMetadataKey carries "Bearer <auth key>".
	AuthMetadataKey = "authorization"
	// RequestIDMetadataKey carries the client request id used as trace id.
	RequestIDMetadataKey = "x-request-id"
)

// PosterAppServer is implemented by the server-side gRPC handler.
type PosterAppServer interface {
	RegisterAccount(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	LoginAccount(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	PlacePoster(ctx context.Context, req *models.PosterRequest) (*models.PosterResponse, error)
	RemovePoster(ctx context.Context, req *models.PosterRequest) (*models.PosterResponse, error)
	RetrieveUpdates(ctx context.Context, req *models.UpdatesRequest) (*models.UpdatesResponse, error)
}

// RegisterPosterAppServer attaches srv to s.
func RegisterPosterAppServer(s grpc.ServiceRegistrar, srv PosterAppServer) {
	s.RegisterService(&PosterAppServiceDesc, srv)
}

// PosterAppServiceDesc is the grpc.ServiceDesc of poster.PosterApp.
var PosterAppServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PosterAppServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterAccount",
			Handler:    unaryHandler(MethodRegisterAccount, PosterAppServer.RegisterAccount),
		},
		{
			MethodName: "LoginAccount",
			Handler:    unaryHandler(MethodLoginAccount, PosterAppServer.LoginAccount),
		},
		{
			MethodName: "PlacePoster",
			Handler:    unaryHandler(MethodPlacePoster, PosterAppServer.PlacePoster),
		},
		{
			MethodName: "RemovePoster",
			Handler:    unaryHandler(MethodRemovePoster, PosterAppServer.RemovePoster),
		},
		{
			MethodName: "RetrieveUpdates",
			Handler:    unaryHandler(MethodRetrieveUpdates, PosterAppServer.RetrieveUpdates),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(PosterAppServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PosterAppServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PosterAppServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PosterAppClient is the client stub of poster.PosterApp. Every call uses
// the JSON codec.
type PosterAppClient struct {
	cc grpc.ClientConnInterface
}

// NewPosterAppClient wraps cc.
func NewPosterAppClient(cc grpc.ClientConnInterface) *PosterAppClient {
	return &PosterAppClient{cc: cc}
}

func (c *PosterAppClient) RegisterAccount(ctx context.Context, in *models.RegisterRequest, opts ...grpc.CallOption) (*models.RegisterResponse, error) {
	return invoke[models.RegisterResponse](ctx, c.cc, MethodRegisterAccount, in, opts)
}

func (c *PosterAppClient) LoginAccount(ctx context.Context, in *models.LoginRequest, opts ...grpc.CallOption) (*models.LoginResponse, error) {
	return invoke[models.LoginResponse](ctx, c.cc, MethodLoginAccount, in, opts)
}

func (c *PosterAppClient) PlacePoster(ctx context.Context, in *models.PosterRequest, opts ...grpc.CallOption) (*models.PosterResponse, error) {
	return invoke[models.PosterResponse](ctx, c.cc, MethodPlacePoster, in, opts)
}

func (c *PosterAppClient) RemovePoster(ctx context.Context, in *models.PosterRequest, opts ...grpc.CallOption) (*models.PosterResponse, error) {
	return invoke[models.PosterResponse](ctx, c.cc, MethodRemovePoster, in, opts)
}

func (c *PosterAppClient) RetrieveUpdates(ctx context.Context, in *models.UpdatesRequest, opts ...grpc.CallOption) (*models.UpdatesResponse, error) {
	return invoke[models.UpdatesResponse](ctx, c.cc, MethodRetrieveUpdates, in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}
