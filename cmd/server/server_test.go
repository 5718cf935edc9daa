package main

import (
	"context"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	v1alpha1 "github.com/Pallarran/Ultimate-D-D-Tools/internal/handlers/api/v1alpha1"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/config"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/testutils"
)

// WiringTestSuite boots the fully wired server against miniredis
type WiringTestSuite struct {
	suite.Suite
	server     *grpc.Server
	conn       *grpc.ClientConn
	labClient  v1alpha1.CombatLabServiceClient
	buildCli   v1alpha1.BuildServiceClient
	diceClient v1alpha1.DiceServiceClient
	ctx        context.Context
}

func TestWiringTestSuite(t *testing.T) {
	suite.Run(t, new(WiringTestSuite))
}

func (s *WiringTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr := testutils.CreateTestRedisClient(s.T())

	cfg := &config.Config{}
	s.Require().NoError(config.ParseEnv(cfg))
	cfg.RedisAddr = mr.Addr()

	srv, err := newGRPCServer(cfg, client, slog.Default())
	s.Require().NoError(err)
	s.server = srv

	lis := bufconn.Listen(1024 * 1024)
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

func (s *WiringTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *WiringTestSuite) TestHealthReportsEveryService() {
	health := grpc_health_v1.NewHealthClient(s.conn)
	for _, name := range []string{"", v1alpha1.CombatLabServiceName, v1alpha1.BuildServiceName, v1alpha1.DiceServiceName} {
		resp, err := health.Check(s.ctx, &grpc_health_v1.HealthCheckRequest{Service: name})
		s.Require().NoError(err, name)
		s.Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus(), name)
	}
}

func (s *WiringTestSuite) TestStoredBuildAnalysis() {
	created, err := s.buildCli.CreateBuild(s.ctx, &v1alpha1.CreateBuildRequest{Name: "Champion"})
	s.Require().NoError(err)
	s.Require().NotEmpty(created.Build.ID)

	analyzed, err := s.labClient.AnalyzeBuild(s.ctx, &v1alpha1.AnalyzeBuildRequest{
		Selection: v1alpha1.Selection{BuildID: created.Build.ID},
	})
	s.Require().NoError(err)
	s.InDelta(3.15, analyzed.Report.CombinedDPR, 1e-9)

	listed, err := s.buildCli.ListBuilds(s.ctx, &v1alpha1.ListBuildsRequest{})
	s.Require().NoError(err)
	s.Len(listed.Builds, 1)
}

func (s *WiringTestSuite) TestRollIntoSession() {
	rolled, err := s.diceClient.RollDamage(s.ctx, &v1alpha1.RollDamageRequest{
		OwnerType: "build",
		OwnerID:   "build_1",
		Notation:  "5",
	})
	s.Require().NoError(err)
	s.Equal(5, rolled.Roll.Total)

	session, err := s.diceClient.GetRollSession(s.ctx, &v1alpha1.GetRollSessionRequest{
		OwnerType: "build",
		OwnerID:   "build_1",
	})
	s.Require().NoError(err)
	s.Len(session.Rolls, 1)
}

func (s *WiringTestSuite) TestHitChance() {
	resp, err := s.labClient.HitChance(s.ctx, &v1alpha1.HitChanceRequest{AttackBonus: 5, Defense: 15})
	s.Require().NoError(err)
	s.InDelta(0.55, resp.HitChance, 1e-9)
	s.InDelta(0.05, resp.CritChance, 1e-9)
}
