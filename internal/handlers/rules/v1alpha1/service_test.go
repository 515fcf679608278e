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

	"github.com/KirkDiggler/ordem-api/internal/engine/resolve"
	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
	"github.com/KirkDiggler/ordem-api/internal/handlers/rules/v1alpha1"
	"github.com/KirkDiggler/ordem-api/internal/orchestrators/rules"
	rulesmock "github.com/KirkDiggler/ordem-api/internal/orchestrators/rules/mock"
	"github.com/KirkDiggler/ordem-api/internal/testutils"
)

const bufSize = 1024 * 1024

type ServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRules *rulesmock.MockService
	server    *grpc.Server
	conn      *grpc.ClientConn
	client    *v1alpha1.RulesServiceClient
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRules = rulesmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RulesService: s.mockRules})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	v1alpha1.RegisterRulesServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewRulesServiceClient(conn)
}

func (s *ServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestGetCharacterRoundTrip() {
	character := testutils.CreateTestCharacter("player-1")
	character.Conditions = []ordem.Condition{ordem.ConditionBlind}

	s.mockRules.EXPECT().
		GetCharacter(gomock.Any(), &rules.GetCharacterInput{CharacterID: character.ID}).
		Return(&rules.GetCharacterOutput{Character: character, Sheet: rules.SheetFor(character)}, nil)

	resp, err := s.client.GetCharacter(context.Background(), &v1alpha1.GetCharacterRequest{CharacterID: character.ID})
	s.Require().NoError(err)
	s.Equal(character.ID, resp.Character.ID)
	s.Equal(character.Name, resp.Character.Name)
	s.Equal(character.Skills, resp.Character.Skills)
	s.Equal([]ordem.Condition{ordem.ConditionBlind}, resp.Character.Conditions)
	s.Equal(rules.SheetFor(character).Defense, resp.Sheet.Defense)
}

func (s *ServiceTestSuite) TestRollSkillTestRoundTrip() {
	s.mockRules.EXPECT().
		RollSkillTest(gomock.Any(), &rules.RollSkillTestInput{
			CharacterID: "char-1",
			Skill:       ordem.SkillPerception,
			Difficulty:  15,
		}).
		Return(&rules.RollSkillTestOutput{
			Skill:      ordem.SkillPerception,
			Attribute:  ordem.AttributePresence,
			Roll:       &resolve.RollResult{Dice: []int{12, 7}, SelectedDie: 12, Bonus: 5, Total: 17},
			Difficulty: 15,
			Success:    true,
		}, nil)

	resp, err := s.client.RollSkillTest(context.Background(), &v1alpha1.RollSkillTestRequest{
		CharacterID: "char-1",
		Skill:       ordem.SkillPerception,
		Difficulty:  15,
	})
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal([]int{12, 7}, resp.Roll.Dice)
	s.Equal(17, resp.Roll.Total)
}

func (s *ServiceTestSuite) TestErrorStatusCrossesTheWire() {
	s.mockRules.EXPECT().
		ApplyCondition(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("unknown condition: HAUNTED"))

	_, err := s.client.ApplyCondition(context.Background(), &v1alpha1.ApplyConditionRequest{
		CharacterID: "char-1",
		Condition:   "HAUNTED",
	})
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
	s.Equal("unknown condition: HAUNTED", status.Convert(err).Message())
}

func (s *ServiceTestSuite) TestValidationHappensServerSide() {
	_, err := s.client.DeleteCharacter(context.Background(), &v1alpha1.DeleteCharacterRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
