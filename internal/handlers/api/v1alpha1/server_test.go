package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/combat"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/pillars"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/handlers/api/v1alpha1"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/builds"
	buildsvcmock "github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/builds/mock"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/combatlab"
	combatlabmock "github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/combatlab/mock"
	dicemock "github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/dice/mock"
)

// ServerTestSuite runs the handlers behind a real gRPC server on bufconn
type ServerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	combatLab  *combatlabmock.MockService
	buildSvc   *buildsvcmock.MockService
	server     *grpc.Server
	conn       *grpc.ClientConn
	labClient  v1alpha1.CombatLabServiceClient
	buildCli   v1alpha1.BuildServiceClient
	diceClient v1alpha1.DiceServiceClient
	ctx        context.Context
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.combatLab = combatlabmock.NewMockService(s.ctrl)
	s.buildSvc = buildsvcmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	labHandler, err := v1alpha1.NewCombatLabHandler(&v1alpha1.CombatLabHandlerConfig{CombatLabService: s.combatLab})
	s.Require().NoError(err)
	buildHandler, err := v1alpha1.NewBuildHandler(&v1alpha1.BuildHandlerConfig{BuildService: s.buildSvc})
	s.Require().NoError(err)
	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{DiceService: dicemock.NewMockService(s.ctrl)})
	s.Require().NoError(err)

	lis := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	v1alpha1.RegisterCombatLabServiceServer(s.server, labHandler)
	v1alpha1.RegisterBuildServiceServer(s.server, buildHandler)
	v1alpha1.RegisterDiceServiceServer(s.server, diceHandler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)

	s.labClient = v1alpha1.NewCombatLabServiceClient(s.conn)
	s.buildCli = v1alpha1.NewBuildServiceClient(s.conn)
	s.diceClient = v1alpha1.NewDiceServiceClient(s.conn)
}

func (s *ServerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ServerTestSuite) TestAnalyzeBuildRoundTrip() {
	s.combatLab.EXPECT().
		AnalyzeBuild(gomock.Any(), &combatlab.AnalyzeBuildInput{
			Selection: combatlab.Selection{BuildID: "build_1", ScenarioID: "scn_1"},
		}).
		Return(&combatlab.AnalyzeBuildOutput{Report: &analysis.Report{
			BuildID:     "build_1",
			Defense:     16,
			CombinedDPR: 3.15,
			TimeToKill:  combat.EstimateTimeToKill(3.15, 90),
		}}, nil)

	resp, err := s.labClient.AnalyzeBuild(s.ctx, &v1alpha1.AnalyzeBuildRequest{
		Selection: v1alpha1.Selection{BuildID: "build_1", ScenarioID: "scn_1"},
	})
	s.Require().NoError(err)
	s.Equal("build_1", resp.Report.BuildID)
	s.InDelta(3.15, resp.Report.CombinedDPR, 1e-9)
	s.InDelta(90/3.15, resp.Report.TimeToKill.ExpectedRounds, 1e-9)
}

func (s *ServerTestSuite) TestInlineBuildTravelsAsJSON() {
	build := entities.DefaultBuild("Inline")
	s.combatLab.EXPECT().
		SweepTradeoff(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *combatlab.SweepTradeoffInput) (*combatlab.SweepTradeoffOutput, error) {
			s.Equal(build, input.Build)
			s.Equal(12, input.FromAC)
			return &combatlab.SweepTradeoffOutput{Report: &analysis.SweepReport{ProfileID: "longsword"}}, nil
		})

	resp, err := s.labClient.SweepTradeoff(s.ctx, &v1alpha1.SweepTradeoffRequest{
		Selection: v1alpha1.Selection{Build: build},
		FromAC:    12,
		ToAC:      14,
	})
	s.Require().NoError(err)
	s.Equal("longsword", resp.Report.ProfileID)
}

func (s *ServerTestSuite) TestErrorsCarryCodeAndMetadata() {
	s.buildSvc.EXPECT().
		GetBuild(gomock.Any(), &builds.GetBuildInput{BuildID: "missing"}).
		Return(nil, errors.NotFound("build not found").WithMeta("build_id", "missing"))

	_, err := s.buildCli.GetBuild(s.ctx, &v1alpha1.GetBuildRequest{BuildID: "missing"})
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("build not found", st.Message())

	s.Require().Len(st.Details(), 1)
	details, ok := st.Details()[0].(*structpb.Struct)
	s.Require().True(ok)
	s.Equal("missing", details.AsMap()["build_id"])
}

func (s *ServerTestSuite) TestScorePillarsRoundTrip() {
	weights := pillars.Weights{Social: 2, Mobility: 1}
	s.combatLab.EXPECT().
		ScorePillars(gomock.Any(), &combatlab.ScorePillarsInput{BuildID: "build_1", Weights: weights}).
		Return(&combatlab.ScorePillarsOutput{Report: &analysis.PillarReport{
			BuildID:  "build_1",
			Scores:   pillars.Scores{Social: 40, Mobility: 36},
			Weights:  weights,
			Weighted: 116.0 / 3,
		}}, nil)

	resp, err := s.labClient.ScorePillars(s.ctx, &v1alpha1.ScorePillarsRequest{BuildID: "build_1", Weights: weights})
	s.Require().NoError(err)
	s.Equal(weights, resp.Report.Weights)
	s.InDelta(36, resp.Report.Scores.Mobility, 1e-9)
	s.InDelta(116.0/3, resp.Report.Weighted, 1e-9)

	_, err = s.labClient.ScorePillars(s.ctx, &v1alpha1.ScorePillarsRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ServerTestSuite) TestHandlerValidationBeforeService() {
	_, err := s.labClient.HitChance(s.ctx, &v1alpha1.HitChanceRequest{AttackBonus: 5})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.diceClient.RollDamage(s.ctx, &v1alpha1.RollDamageRequest{Notation: "1d6"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ServerTestSuite) TestInterceptorSeesFullMethod() {
	var seen string
	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer(grpc.UnaryInterceptor(func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return handler(ctx, req)
	}))
	labHandler, err := v1alpha1.NewCombatLabHandler(&v1alpha1.CombatLabHandlerConfig{CombatLabService: s.combatLab})
	s.Require().NoError(err)
	v1alpha1.RegisterCombatLabServiceServer(server, labHandler)
	go func() {
		_ = server.Serve(lis)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.combatLab.EXPECT().
		HitChance(gomock.Any(), gomock.Any()).
		Return(&combatlab.HitChanceOutput{Mode: "normal", HitChance: 0.5, CritChance: 0.05}, nil)

	resp, err := v1alpha1.NewCombatLabServiceClient(conn).HitChance(s.ctx, &v1alpha1.HitChanceRequest{AttackBonus: 5, Defense: 16})
	s.Require().NoError(err)
	s.InDelta(0.5, resp.HitChance, 1e-9)
	s.Equal("/ddtools.api.v1alpha1.CombatLabService/HitChance", seen)
}
