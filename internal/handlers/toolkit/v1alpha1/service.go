package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dndai.toolkit.v1alpha1.ToolkitService"

// Full method names
const (
	ToolkitService_CreateWorld_FullMethodName       = "/" + ServiceName + "/CreateWorld"
	ToolkitService_GetWorld_FullMethodName          = "/" + ServiceName + "/GetWorld"
	ToolkitService_UpdateWorld_FullMethodName       = "/" + ServiceName + "/UpdateWorld"
	ToolkitService_ListWorlds_FullMethodName        = "/" + ServiceName + "/ListWorlds"
	ToolkitService_DeleteWorld_FullMethodName       = "/" + ServiceName + "/DeleteWorld"
	ToolkitService_CreateCampaign_FullMethodName    = "/" + ServiceName + "/CreateCampaign"
	ToolkitService_GetCampaign_FullMethodName       = "/" + ServiceName + "/GetCampaign"
	ToolkitService_UpdateCampaign_FullMethodName    = "/" + ServiceName + "/UpdateCampaign"
	ToolkitService_ListCampaigns_FullMethodName     = "/" + ServiceName + "/ListCampaigns"
	ToolkitService_DeleteCampaign_FullMethodName    = "/" + ServiceName + "/DeleteCampaign"
	ToolkitService_ListCharacters_FullMethodName    = "/" + ServiceName + "/ListCharacters"
	ToolkitService_GetCharacter_FullMethodName      = "/" + ServiceName + "/GetCharacter"
	ToolkitService_SaveCharacter_FullMethodName     = "/" + ServiceName + "/SaveCharacter"
	ToolkitService_DeleteCharacter_FullMethodName   = "/" + ServiceName + "/DeleteCharacter"
	ToolkitService_RollAbilityScores_FullMethodName = "/" + ServiceName + "/RollAbilityScores"
	ToolkitService_AssembleContext_FullMethodName   = "/" + ServiceName + "/AssembleContext"
	ToolkitService_GenerateNPC_FullMethodName       = "/" + ServiceName + "/GenerateNPC"
	ToolkitService_GeneratePortrait_FullMethodName  = "/" + ServiceName + "/GeneratePortrait"
	ToolkitService_SimulateNPC_FullMethodName       = "/" + ServiceName + "/SimulateNPC"
	ToolkitService_TranslateRecord_FullMethodName   = "/" + ServiceName + "/TranslateRecord"
	ToolkitService_ListOptions_FullMethodName       = "/" + ServiceName + "/ListOptions"
)

// ToolkitServiceServer is the server API for the toolkit service. Every
// request and response is a google.protobuf.Struct.
type ToolkitServiceServer interface {
	CreateWorld(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetWorld(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateWorld(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListWorlds(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteWorld(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateCampaign(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCampaign(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCampaign(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCampaigns(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCampaign(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollAbilityScores(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssembleContext(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GenerateNPC(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GeneratePortrait(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SimulateNPC(context.Context, *structpb.Struct) (*structpb.Struct, error)
	TranslateRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListOptions(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterToolkitServiceServer registers srv on s
func RegisterToolkitServiceServer(s grpc.ServiceRegistrar, srv ToolkitServiceServer) {
	s.RegisterService(&ToolkitService_ServiceDesc, srv)
}

// ToolkitService_ServiceDesc describes the toolkit service for grpc.Server
var ToolkitService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ToolkitServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateWorld", Handler: unaryHandler(ToolkitService_CreateWorld_FullMethodName, ToolkitServiceServer.CreateWorld)},
		{MethodName: "GetWorld", Handler: unaryHandler(ToolkitService_GetWorld_FullMethodName, ToolkitServiceServer.GetWorld)},
		{MethodName: "UpdateWorld", Handler: unaryHandler(ToolkitService_UpdateWorld_FullMethodName, ToolkitServiceServer.UpdateWorld)},
		{MethodName: "ListWorlds", Handler: unaryHandler(ToolkitService_ListWorlds_FullMethodName, ToolkitServiceServer.ListWorlds)},
		{MethodName: "DeleteWorld", Handler: unaryHandler(ToolkitService_DeleteWorld_FullMethodName, ToolkitServiceServer.DeleteWorld)},
		{MethodName: "CreateCampaign", Handler: unaryHandler(ToolkitService_CreateCampaign_FullMethodName, ToolkitServiceServer.CreateCampaign)},
		{MethodName: "GetCampaign", Handler: unaryHandler(ToolkitService_GetCampaign_FullMethodName, ToolkitServiceServer.GetCampaign)},
		{MethodName: "UpdateCampaign", Handler: unaryHandler(ToolkitService_UpdateCampaign_FullMethodName, ToolkitServiceServer.UpdateCampaign)},
		{MethodName: "ListCampaigns", Handler: unaryHandler(ToolkitService_ListCampaigns_FullMethodName, ToolkitServiceServer.ListCampaigns)},
		{MethodName: "DeleteCampaign", Handler: unaryHandler(ToolkitService_DeleteCampaign_FullMethodName, ToolkitServiceServer.DeleteCampaign)},
		{MethodName: "ListCharacters", Handler: unaryHandler(ToolkitService_ListCharacters_FullMethodName, ToolkitServiceServer.ListCharacters)},
		{MethodName: "GetCharacter", Handler: unaryHandler(ToolkitService_GetCharacter_FullMethodName, ToolkitServiceServer.GetCharacter)},
		{MethodName: "SaveCharacter", Handler: unaryHandler(ToolkitService_SaveCharacter_FullMethodName, ToolkitServiceServer.SaveCharacter)},
		{MethodName: "DeleteCharacter", Handler: unaryHandler(ToolkitService_DeleteCharacter_FullMethodName, ToolkitServiceServer.DeleteCharacter)},
		{MethodName: "RollAbilityScores", Handler: unaryHandler(ToolkitService_RollAbilityScores_FullMethodName, ToolkitServiceServer.RollAbilityScores)},
		{MethodName: "AssembleContext", Handler: unaryHandler(ToolkitService_AssembleContext_FullMethodName, ToolkitServiceServer.AssembleContext)},
		{MethodName: "GenerateNPC", Handler: unaryHandler(ToolkitService_GenerateNPC_FullMethodName, ToolkitServiceServer.GenerateNPC)},
		{MethodName: "GeneratePortrait", Handler: unaryHandler(ToolkitService_GeneratePortrait_FullMethodName, ToolkitServiceServer.GeneratePortrait)},
		{MethodName: "SimulateNPC", Handler: unaryHandler(ToolkitService_SimulateNPC_FullMethodName, ToolkitServiceServer.SimulateNPC)},
		{MethodName: "TranslateRecord", Handler: unaryHandler(ToolkitService_TranslateRecord_FullMethodName, ToolkitServiceServer.TranslateRecord)},
		{MethodName: "ListOptions", Handler: unaryHandler(ToolkitService_ListOptions_FullMethodName, ToolkitServiceServer.ListOptions)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dndai/toolkit/v1alpha1/toolkit.proto",
}

type unaryMethod func(ToolkitServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ToolkitServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ToolkitServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ToolkitServiceClient is the client API for the toolkit service
type ToolkitServiceClient interface {
	CreateWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListWorlds(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateCampaign(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCampaign(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateCampaign(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListCampaigns(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteCampaign(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListCharacters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SaveCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RollAbilityScores(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AssembleContext(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GenerateNPC(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GeneratePortrait(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SimulateNPC(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	TranslateRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListOptions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type toolkitServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewToolkitServiceClient creates a client on cc
func NewToolkitServiceClient(cc grpc.ClientConnInterface) ToolkitServiceClient {
	return &toolkitServiceClient{cc: cc}
}

func (c *toolkitServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolkitServiceClient) CreateWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_CreateWorld_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) GetWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_GetWorld_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) UpdateWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_UpdateWorld_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) ListWorlds(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_ListWorlds_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) DeleteWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_DeleteWorld_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) CreateCampaign(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_CreateCampaign_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) GetCampaign(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_GetCampaign_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) UpdateCampaign(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_UpdateCampaign_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) ListCampaigns(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_ListCampaigns_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) DeleteCampaign(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_DeleteCampaign_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) ListCharacters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_ListCharacters_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) GetCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_GetCharacter_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) SaveCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_SaveCharacter_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) DeleteCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_DeleteCharacter_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) RollAbilityScores(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_RollAbilityScores_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) AssembleContext(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_AssembleContext_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) GenerateNPC(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_GenerateNPC_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) GeneratePortrait(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_GeneratePortrait_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) SimulateNPC(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_SimulateNPC_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) TranslateRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_TranslateRecord_FullMethodName, in, opts)
}

func (c *toolkitServiceClient) ListOptions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ToolkitService_ListOptions_FullMethodName, in, opts)
}
