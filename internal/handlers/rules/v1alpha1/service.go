package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified name of the rules service
const ServiceName = "ordem.rules.v1alpha1.RulesService"

// RulesServiceServer is the server API for the rules service
type RulesServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*CharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
	SetNEX(context.Context, *SetNEXRequest) (*SetNEXResponse, error)
	Rest(context.Context, *RestRequest) (*RestResponse, error)
	RollSkillTest(context.Context, *RollSkillTestRequest) (*RollSkillTestResponse, error)
	Attack(context.Context, *AttackRequest) (*AttackResponse, error)
	RollResistance(context.Context, *RollResistanceRequest) (*RollResistanceResponse, error)
	ApplyCondition(context.Context, *ApplyConditionRequest) (*ApplyConditionResponse, error)
	RemoveCondition(context.Context, *RemoveConditionRequest) (*RemoveConditionResponse, error)
	ApplyDamage(context.Context, *ApplyDamageRequest) (*ApplyDamageResponse, error)
	ProcessTurn(context.Context, *ProcessTurnRequest) (*ProcessTurnResponse, error)
	ListRituals(context.Context, *ListRitualsRequest) (*ListRitualsResponse, error)
	ConjureRitual(context.Context, *ConjureRitualRequest) (*ConjureRitualResponse, error)
}

// unary builds the method descriptor of a single unary RPC
func unary[Req, Resp any](
	method string, call func(RulesServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(RulesServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + method,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(RulesServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the rules service to grpc.Server
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RulesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateCharacter", RulesServiceServer.CreateCharacter),
		unary("GetCharacter", RulesServiceServer.GetCharacter),
		unary("ListCharacters", RulesServiceServer.ListCharacters),
		unary("DeleteCharacter", RulesServiceServer.DeleteCharacter),
		unary("SetNEX", RulesServiceServer.SetNEX),
		unary("Rest", RulesServiceServer.Rest),
		unary("RollSkillTest", RulesServiceServer.RollSkillTest),
		unary("Attack", RulesServiceServer.Attack),
		unary("RollResistance", RulesServiceServer.RollResistance),
		unary("ApplyCondition", RulesServiceServer.ApplyCondition),
		unary("RemoveCondition", RulesServiceServer.RemoveCondition),
		unary("ApplyDamage", RulesServiceServer.ApplyDamage),
		unary("ProcessTurn", RulesServiceServer.ProcessTurn),
		unary("ListRituals", RulesServiceServer.ListRituals),
		unary("ConjureRitual", RulesServiceServer.ConjureRitual),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ordem/rules/v1alpha1/rules.json",
}

// RegisterRulesServiceServer registers the rules service on a server
func RegisterRulesServiceServer(s grpc.ServiceRegistrar, srv RulesServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// RulesServiceClient calls the rules service over a client connection using
// the JSON codec
type RulesServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRulesServiceClient creates a client on an existing connection
func NewRulesServiceClient(cc grpc.ClientConnInterface) *RulesServiceClient {
	return &RulesServiceClient{cc: cc}
}

func invoke[Req, Resp any](
	ctx context.Context, c *RulesServiceClient, method string, in *Req, opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCharacter calls RulesService.CreateCharacter
func (c *RulesServiceClient) CreateCharacter(
	ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption,
) (*CharacterResponse, error) {
	return invoke[CreateCharacterRequest, CharacterResponse](ctx, c, "CreateCharacter", in, opts)
}

// GetCharacter calls RulesService.GetCharacter
func (c *RulesServiceClient) GetCharacter(
	ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption,
) (*CharacterResponse, error) {
	return invoke[GetCharacterRequest, CharacterResponse](ctx, c, "GetCharacter", in, opts)
}

// ListCharacters calls RulesService.ListCharacters
func (c *RulesServiceClient) ListCharacters(
	ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption,
) (*ListCharactersResponse, error) {
	return invoke[ListCharactersRequest, ListCharactersResponse](ctx, c, "ListCharacters", in, opts)
}

// DeleteCharacter calls RulesService.DeleteCharacter
func (c *RulesServiceClient) DeleteCharacter(
	ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption,
) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterRequest, DeleteCharacterResponse](ctx, c, "DeleteCharacter", in, opts)
}

// SetNEX calls RulesService.SetNEX
func (c *RulesServiceClient) SetNEX(
	ctx context.Context, in *SetNEXRequest, opts ...grpc.CallOption,
) (*SetNEXResponse, error) {
	return invoke[SetNEXRequest, SetNEXResponse](ctx, c, "SetNEX", in, opts)
}

// Rest calls RulesService.Rest
func (c *RulesServiceClient) Rest(
	ctx context.Context, in *RestRequest, opts ...grpc.CallOption,
) (*RestResponse, error) {
	return invoke[RestRequest, RestResponse](ctx, c, "Rest", in, opts)
}

// RollSkillTest calls RulesService.RollSkillTest
func (c *RulesServiceClient) RollSkillTest(
	ctx context.Context, in *RollSkillTestRequest, opts ...grpc.CallOption,
) (*RollSkillTestResponse, error) {
	return invoke[RollSkillTestRequest, RollSkillTestResponse](ctx, c, "RollSkillTest", in, opts)
}

// Attack calls RulesService.Attack
func (c *RulesServiceClient) Attack(
	ctx context.Context, in *AttackRequest, opts ...grpc.CallOption,
) (*AttackResponse, error) {
	return invoke[AttackRequest, AttackResponse](ctx, c, "Attack", in, opts)
}

// RollResistance calls RulesService.RollResistance
func (c *RulesServiceClient) RollResistance(
	ctx context.Context, in *RollResistanceRequest, opts ...grpc.CallOption,
) (*RollResistanceResponse, error) {
	return invoke[RollResistanceRequest, RollResistanceResponse](ctx, c, "RollResistance", in, opts)
}

// ApplyCondition calls RulesService.ApplyCondition
func (c *RulesServiceClient) ApplyCondition(
	ctx context.Context, in *ApplyConditionRequest, opts ...grpc.CallOption,
) (*ApplyConditionResponse, error) {
	return invoke[ApplyConditionRequest, ApplyConditionResponse](ctx, c, "ApplyCondition", in, opts)
}

// RemoveCondition calls RulesService.RemoveCondition
func (c *RulesServiceClient) RemoveCondition(
	ctx context.Context, in *RemoveConditionRequest, opts ...grpc.CallOption,
) (*RemoveConditionResponse, error) {
	return invoke[RemoveConditionRequest, RemoveConditionResponse](ctx, c, "RemoveCondition", in, opts)
}

// ApplyDamage calls RulesService.ApplyDamage
func (c *RulesServiceClient) ApplyDamage(
	ctx context.Context, in *ApplyDamageRequest, opts ...grpc.CallOption,
) (*ApplyDamageResponse, error) {
	return invoke[ApplyDamageRequest, ApplyDamageResponse](ctx, c, "ApplyDamage", in, opts)
}

// ProcessTurn calls RulesService.ProcessTurn
func (c *RulesServiceClient) ProcessTurn(
	ctx context.Context, in *ProcessTurnRequest, opts ...grpc.CallOption,
) (*ProcessTurnResponse, error) {
	return invoke[ProcessTurnRequest, ProcessTurnResponse](ctx, c, "ProcessTurn", in, opts)
}

// ListRituals calls RulesService.ListRituals
func (c *RulesServiceClient) ListRituals(
	ctx context.Context, in *ListRitualsRequest, opts ...grpc.CallOption,
) (*ListRitualsResponse, error) {
	return invoke[ListRitualsRequest, ListRitualsResponse](ctx, c, "ListRituals", in, opts)
}

// ConjureRitual calls RulesService.ConjureRitual
func (c *RulesServiceClient) ConjureRitual(
	ctx context.Context, in *ConjureRitualRequest, opts ...grpc.CallOption,
) (*ConjureRitualResponse, error) {
	return invoke[ConjureRitualRequest, ConjureRitualResponse](ctx, c, "ConjureRitual", in, opts)
}
