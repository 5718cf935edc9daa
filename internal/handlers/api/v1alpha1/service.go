package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// Fully qualified service names
const (
	CombatLabServiceName = "ddtools.api.v1alpha1.CombatLabService"
	BuildServiceName     = "ddtools.api.v1alpha1.BuildService"
	DiceServiceName      = "ddtools.api.v1alpha1.DiceService"
)

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// unary adapts a typed server method to grpc.MethodHandler
func unary[S, Req, Resp any](method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// invoke calls method with the JSON codec
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CombatLabServiceServer is the server API for the combat lab service
type CombatLabServiceServer interface {
	AnalyzeBuild(ctx context.Context, req *AnalyzeBuildRequest) (*AnalyzeBuildResponse, error)
	SweepTradeoff(ctx context.Context, req *SweepTradeoffRequest) (*SweepTradeoffResponse, error)
	EstimateTimeToKill(ctx context.Context, req *EstimateTimeToKillRequest) (*EstimateTimeToKillResponse, error)
	HitChance(ctx context.Context, req *HitChanceRequest) (*HitChanceResponse, error)
	ScorePillars(ctx context.Context, req *ScorePillarsRequest) (*ScorePillarsResponse, error)
}

// CombatLabService_ServiceDesc describes the combat lab service for grpc.ServiceRegistrar
var CombatLabService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CombatLabServiceName,
	HandlerType: (*CombatLabServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AnalyzeBuild", Handler: unary(fullMethod(CombatLabServiceName, "AnalyzeBuild"), CombatLabServiceServer.AnalyzeBuild)},
		{MethodName: "SweepTradeoff", Handler: unary(fullMethod(CombatLabServiceName, "SweepTradeoff"), CombatLabServiceServer.SweepTradeoff)},
		{MethodName: "EstimateTimeToKill", Handler: unary(fullMethod(CombatLabServiceName, "EstimateTimeToKill"), CombatLabServiceServer.EstimateTimeToKill)},
		{MethodName: "HitChance", Handler: unary(fullMethod(CombatLabServiceName, "HitChance"), CombatLabServiceServer.HitChance)},
		{MethodName: "ScorePillars", Handler: unary(fullMethod(CombatLabServiceName, "ScorePillars"), CombatLabServiceServer.ScorePillars)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterCombatLabServiceServer registers srv with s
func RegisterCombatLabServiceServer(s grpc.ServiceRegistrar, srv CombatLabServiceServer) {
	s.RegisterService(&CombatLabService_ServiceDesc, srv)
}

// CombatLabServiceClient is the client API for the combat lab service
type CombatLabServiceClient interface {
	AnalyzeBuild(ctx context.Context, req *AnalyzeBuildRequest, opts ...grpc.CallOption) (*AnalyzeBuildResponse, error)
	SweepTradeoff(ctx context.Context, req *SweepTradeoffRequest, opts ...grpc.CallOption) (*SweepTradeoffResponse, error)
	EstimateTimeToKill(ctx context.Context, req *EstimateTimeToKillRequest, opts ...grpc.CallOption) (*EstimateTimeToKillResponse, error)
	HitChance(ctx context.Context, req *HitChanceRequest, opts ...grpc.CallOption) (*HitChanceResponse, error)
	ScorePillars(ctx context.Context, req *ScorePillarsRequest, opts ...grpc.CallOption) (*ScorePillarsResponse, error)
}

type combatLabServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCombatLabServiceClient creates a client that speaks JSON over cc
func NewCombatLabServiceClient(cc grpc.ClientConnInterface) CombatLabServiceClient {
	return &combatLabServiceClient{cc: cc}
}

func (c *combatLabServiceClient) AnalyzeBuild(ctx context.Context, req *AnalyzeBuildRequest, opts ...grpc.CallOption) (*AnalyzeBuildResponse, error) {
	return invoke[AnalyzeBuildResponse](ctx, c.cc, fullMethod(CombatLabServiceName, "AnalyzeBuild"), req, opts)
}

func (c *combatLabServiceClient) SweepTradeoff(ctx context.Context, req *SweepTradeoffRequest, opts ...grpc.CallOption) (*SweepTradeoffResponse, error) {
	return invoke[SweepTradeoffResponse](ctx, c.cc, fullMethod(CombatLabServiceName, "SweepTradeoff"), req, opts)
}

func (c *combatLabServiceClient) EstimateTimeToKill(ctx context.Context, req *EstimateTimeToKillRequest, opts ...grpc.CallOption) (*EstimateTimeToKillResponse, error) {
	return invoke[EstimateTimeToKillResponse](ctx, c.cc, fullMethod(CombatLabServiceName, "EstimateTimeToKill"), req, opts)
}

func (c *combatLabServiceClient) HitChance(ctx context.Context, req *HitChanceRequest, opts ...grpc.CallOption) (*HitChanceResponse, error) {
	return invoke[HitChanceResponse](ctx, c.cc, fullMethod(CombatLabServiceName, "HitChance"), req, opts)
}

func (c *combatLabServiceClient) ScorePillars(ctx context.Context, req *ScorePillarsRequest, opts ...grpc.CallOption) (*ScorePillarsResponse, error) {
	return invoke[ScorePillarsResponse](ctx, c.cc, fullMethod(CombatLabServiceName, "ScorePillars"), req, opts)
}

// BuildServiceServer is the server API for the build library service
type BuildServiceServer interface {
	CreateBuild(ctx context.Context, req *CreateBuildRequest) (*BuildResponse, error)
	GetBuild(ctx context.Context, req *GetBuildRequest) (*BuildResponse, error)
	ListBuilds(ctx context.Context, req *ListBuildsRequest) (*ListBuildsResponse, error)
	DeleteBuild(ctx context.Context, req *DeleteBuildRequest) (*DeleteBuildResponse, error)
	DuplicateBuild(ctx context.Context, req *DuplicateBuildRequest) (*BuildResponse, error)
	ListWeapons(ctx context.Context, req *ListWeaponsRequest) (*ListWeaponsResponse, error)
	ImportWeaponProfile(ctx context.Context, req *ImportWeaponProfileRequest) (*ImportWeaponProfileResponse, error)
	SaveScenario(ctx context.Context, req *SaveScenarioRequest) (*SaveScenarioResponse, error)
	GetScenario(ctx context.Context, req *GetScenarioRequest) (*GetScenarioResponse, error)
}

// BuildService_ServiceDesc describes the build library service for grpc.ServiceRegistrar
var BuildService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: BuildServiceName,
	HandlerType: (*BuildServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateBuild", Handler: unary(fullMethod(BuildServiceName, "CreateBuild"), BuildServiceServer.CreateBuild)},
		{MethodName: "GetBuild", Handler: unary(fullMethod(BuildServiceName, "GetBuild"), BuildServiceServer.GetBuild)},
		{MethodName: "ListBuilds", Handler: unary(fullMethod(BuildServiceName, "ListBuilds"), BuildServiceServer.ListBuilds)},
		{MethodName: "DeleteBuild", Handler: unary(fullMethod(BuildServiceName, "DeleteBuild"), BuildServiceServer.DeleteBuild)},
		{MethodName: "DuplicateBuild", Handler: unary(fullMethod(BuildServiceName, "DuplicateBuild"), BuildServiceServer.DuplicateBuild)},
		{MethodName: "ListWeapons", Handler: unary(fullMethod(BuildServiceName, "ListWeapons"), BuildServiceServer.ListWeapons)},
		{MethodName: "ImportWeaponProfile", Handler: unary(fullMethod(BuildServiceName, "ImportWeaponProfile"), BuildServiceServer.ImportWeaponProfile)},
		{MethodName: "SaveScenario", Handler: unary(fullMethod(BuildServiceName, "SaveScenario"), BuildServiceServer.SaveScenario)},
		{MethodName: "GetScenario", Handler: unary(fullMethod(BuildServiceName, "GetScenario"), BuildServiceServer.GetScenario)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterBuildServiceServer registers srv with s
func RegisterBuildServiceServer(s grpc.ServiceRegistrar, srv BuildServiceServer) {
	s.RegisterService(&BuildService_ServiceDesc, srv)
}

// BuildServiceClient is the client API for the build library service
type BuildServiceClient interface {
	CreateBuild(ctx context.Context, req *CreateBuildRequest, opts ...grpc.CallOption) (*BuildResponse, error)
	GetBuild(ctx context.Context, req *GetBuildRequest, opts ...grpc.CallOption) (*BuildResponse, error)
	ListBuilds(ctx context.Context, req *ListBuildsRequest, opts ...grpc.CallOption) (*ListBuildsResponse, error)
	DeleteBuild(ctx context.Context, req *DeleteBuildRequest, opts ...grpc.CallOption) (*DeleteBuildResponse, error)
	DuplicateBuild(ctx context.Context, req *DuplicateBuildRequest, opts ...grpc.CallOption) (*BuildResponse, error)
	ListWeapons(ctx context.Context, req *ListWeaponsRequest, opts ...grpc.CallOption) (*ListWeaponsResponse, error)
	ImportWeaponProfile(ctx context.Context, req *ImportWeaponProfileRequest, opts ...grpc.CallOption) (*ImportWeaponProfileResponse, error)
	SaveScenario(ctx context.Context, req *SaveScenarioRequest, opts ...grpc.CallOption) (*SaveScenarioResponse, error)
	GetScenario(ctx context.Context, req *GetScenarioRequest, opts ...grpc.CallOption) (*GetScenarioResponse, error)
}

type buildServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBuildServiceClient creates a client that speaks JSON over cc
func NewBuildServiceClient(cc grpc.ClientConnInterface) BuildServiceClient {
	return &buildServiceClient{cc: cc}
}

func (c *buildServiceClient) CreateBuild(ctx context.Context, req *CreateBuildRequest, opts ...grpc.CallOption) (*BuildResponse, error) {
	return invoke[BuildResponse](ctx, c.cc, fullMethod(BuildServiceName, "CreateBuild"), req, opts)
}

func (c *buildServiceClient) GetBuild(ctx context.Context, req *GetBuildRequest, opts ...grpc.CallOption) (*BuildResponse, error) {
	return invoke[BuildResponse](ctx, c.cc, fullMethod(BuildServiceName, "GetBuild"), req, opts)
}

func (c *buildServiceClient) ListBuilds(ctx context.Context, req *ListBuildsRequest, opts ...grpc.CallOption) (*ListBuildsResponse, error) {
	return invoke[ListBuildsResponse](ctx, c.cc, fullMethod(BuildServiceName, "ListBuilds"), req, opts)
}

func (c *buildServiceClient) DeleteBuild(ctx context.Context, req *DeleteBuildRequest, opts ...grpc.CallOption) (*DeleteBuildResponse, error) {
	return invoke[DeleteBuildResponse](ctx, c.cc, fullMethod(BuildServiceName, "DeleteBuild"), req, opts)
}

func (c *buildServiceClient) DuplicateBuild(ctx context.Context, req *DuplicateBuildRequest, opts ...grpc.CallOption) (*BuildResponse, error) {
	return invoke[BuildResponse](ctx, c.cc, fullMethod(BuildServiceName, "DuplicateBuild"), req, opts)
}

func (c *buildServiceClient) ListWeapons(ctx context.Context, req *ListWeaponsRequest, opts ...grpc.CallOption) (*ListWeaponsResponse, error) {
	return invoke[ListWeaponsResponse](ctx, c.cc, fullMethod(BuildServiceName, "ListWeapons"), req, opts)
}

func (c *buildServiceClient) ImportWeaponProfile(ctx context.Context, req *ImportWeaponProfileRequest, opts ...grpc.CallOption) (*ImportWeaponProfileResponse, error) {
	return invoke[ImportWeaponProfileResponse](ctx, c.cc, fullMethod(BuildServiceName, "ImportWeaponProfile"), req, opts)
}

func (c *buildServiceClient) SaveScenario(ctx context.Context, req *SaveScenarioRequest, opts ...grpc.CallOption) (*SaveScenarioResponse, error) {
	return invoke[SaveScenarioResponse](ctx, c.cc, fullMethod(BuildServiceName, "SaveScenario"), req, opts)
}

func (c *buildServiceClient) GetScenario(ctx context.Context, req *GetScenarioRequest, opts ...grpc.CallOption) (*GetScenarioResponse, error) {
	return invoke[GetScenarioResponse](ctx, c.cc, fullMethod(BuildServiceName, "GetScenario"), req, opts)
}

// DiceServiceServer is the server API for the dice service
type DiceServiceServer interface {
	RollDamage(ctx context.Context, req *RollDamageRequest) (*RollDamageResponse, error)
	GetRollSession(ctx context.Context, req *GetRollSessionRequest) (*GetRollSessionResponse, error)
	ClearRollSession(ctx context.Context, req *ClearRollSessionRequest) (*ClearRollSessionResponse, error)
}

// DiceService_ServiceDesc describes the dice service for grpc.ServiceRegistrar
var DiceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DiceServiceName,
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RollDamage", Handler: unary(fullMethod(DiceServiceName, "RollDamage"), DiceServiceServer.RollDamage)},
		{MethodName: "GetRollSession", Handler: unary(fullMethod(DiceServiceName, "GetRollSession"), DiceServiceServer.GetRollSession)},
		{MethodName: "ClearRollSession", Handler: unary(fullMethod(DiceServiceName, "ClearRollSession"), DiceServiceServer.ClearRollSession)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterDiceServiceServer registers srv with s
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&DiceService_ServiceDesc, srv)
}

// DiceServiceClient is the client API for the dice service
type DiceServiceClient interface {
	RollDamage(ctx context.Context, req *RollDamageRequest, opts ...grpc.CallOption) (*RollDamageResponse, error)
	GetRollSession(ctx context.Context, req *GetRollSessionRequest, opts ...grpc.CallOption) (*GetRollSessionResponse, error)
	ClearRollSession(ctx context.Context, req *ClearRollSessionRequest, opts ...grpc.CallOption) (*ClearRollSessionResponse, error)
}

type diceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDiceServiceClient creates a client that speaks JSON over cc
func NewDiceServiceClient(cc grpc.ClientConnInterface) DiceServiceClient {
	return &diceServiceClient{cc: cc}
}

func (c *diceServiceClient) RollDamage(ctx context.Context, req *RollDamageRequest, opts ...grpc.CallOption) (*RollDamageResponse, error) {
	return invoke[RollDamageResponse](ctx, c.cc, fullMethod(DiceServiceName, "RollDamage"), req, opts)
}

func (c *diceServiceClient) GetRollSession(ctx context.Context, req *GetRollSessionRequest, opts ...grpc.CallOption) (*GetRollSessionResponse, error) {
	return invoke[GetRollSessionResponse](ctx, c.cc, fullMethod(DiceServiceName, "GetRollSession"), req, opts)
}

func (c *diceServiceClient) ClearRollSession(ctx context.Context, req *ClearRollSessionRequest, opts ...grpc.CallOption) (*ClearRollSessionResponse, error) {
	return invoke[ClearRollSessionResponse](ctx, c.cc, fullMethod(DiceServiceName, "ClearRollSession"), req, opts)
}
