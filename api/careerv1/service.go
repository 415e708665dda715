package careerv1

import (
	"context"

	"UltimateCareer/pkg/grpcx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName e' il nome completo del servizio gRPC.
const ServiceName = "career.v1.CareerService"

// CareerServiceServer e' il lato server del contratto career.v1.
type CareerServiceServer interface {
	ListCareers(context.Context, *ListCareersRequest) (*ListCareersResponse, error)
	GetCareer(context.Context, *GetCareerRequest) (*Career, error)
	CreateCareer(context.Context, *CreateCareerRequest) (*Career, error)
	DeleteCareer(context.Context, *DeleteCareerRequest) (*DeleteCareerResponse, error)
	UpdateProgress(context.Context, *UpdateProgressRequest) (*Career, error)
	GetTactic(context.Context, *CareerScopedRequest) (*Tactic, error)
	CreateTactic(context.Context, *TacticRequest) (*Tactic, error)
	UpsertTactic(context.Context, *TacticRequest) (*Tactic, error)
	GetLineup(context.Context, *CareerScopedRequest) (*GetLineupResponse, error)
	SetLineup(context.Context, *SetLineupRequest) (*Lineup, error)
	ListForSale(context.Context, *ListForSaleRequest) (*Player, error)
	DelistFromSale(context.Context, *DelistFromSaleRequest) (*Player, error)
	BrowseMarket(context.Context, *CareerScopedRequest) (*PlayersResponse, error)
	ListTransfers(context.Context, *CareerScopedRequest) (*ListTransfersResponse, error)
	BuyPlayer(context.Context, *BuyPlayerRequest) (*BuyPlayerResponse, error)
	RecordTransfer(context.Context, *RecordTransferRequest) (*Transfer, error)
	ListDivisionTeams(context.Context, *CareerScopedRequest) (*ListTeamsResponse, error)
	GetMyTeam(context.Context, *CareerScopedRequest) (*Team, error)
	GetTeam(context.Context, *GetTeamRequest) (*Team, error)
	ListSquadPlayers(context.Context, *CareerScopedRequest) (*PlayersResponse, error)
	GetPlayer(context.Context, *GetPlayerRequest) (*Player, error)
	ListStandings(context.Context, *CareerScopedRequest) (*ListStandingsResponse, error)
	ListRounds(context.Context, *CareerScopedRequest) (*ListRoundsResponse, error)
	GetRound(context.Context, *GetRoundRequest) (*Round, error)
	GetMatch(context.Context, *GetMatchRequest) (*Match, error)
	GetNextMatch(context.Context, *CareerScopedRequest) (*NextMatchResponse, error)
	ResizeDivision(context.Context, *ResizeDivisionRequest) (*Division, error)
	mustEmbedUnimplementedCareerServiceServer()
}

// UnimplementedCareerServiceServer va incluso nei server per compatibilita' in avanti.
type UnimplementedCareerServiceServer struct{}

func (UnimplementedCareerServiceServer) ListCareers(context.Context, *ListCareersRequest) (*ListCareersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCareers not implemented")
}

func (UnimplementedCareerServiceServer) GetCareer(context.Context, *GetCareerRequest) (*Career, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCareer not implemented")
}

func (UnimplementedCareerServiceServer) CreateCareer(context.Context, *CreateCareerRequest) (*Career, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCareer not implemented")
}

func (UnimplementedCareerServiceServer) DeleteCareer(context.Context, *DeleteCareerRequest) (*DeleteCareerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCareer not implemented")
}

func (UnimplementedCareerServiceServer) UpdateProgress(context.Context, *UpdateProgressRequest) (*Career, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProgress not implemented")
}

func (UnimplementedCareerServiceServer) GetTactic(context.Context, *CareerScopedRequest) (*Tactic, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTactic not implemented")
}

func (UnimplementedCareerServiceServer) CreateTactic(context.Context, *TacticRequest) (*Tactic, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateTactic not implemented")
}

func (UnimplementedCareerServiceServer) UpsertTactic(context.Context, *TacticRequest) (*Tactic, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertTactic not implemented")
}

func (UnimplementedCareerServiceServer) GetLineup(context.Context, *CareerScopedRequest) (*GetLineupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLineup not implemented")
}

func (UnimplementedCareerServiceServer) SetLineup(context.Context, *SetLineupRequest) (*Lineup, error) {
	return nil, status.Error(codes.Unimplemented, "method SetLineup not implemented")
}

func (UnimplementedCareerServiceServer) ListForSale(context.Context, *ListForSaleRequest) (*Player, error) {
	return nil, status.Error(codes.Unimplemented, "method ListForSale not implemented")
}

func (UnimplementedCareerServiceServer) DelistFromSale(context.Context, *DelistFromSaleRequest) (*Player, error) {
	return nil, status.Error(codes.Unimplemented, "method DelistFromSale not implemented")
}

func (UnimplementedCareerServiceServer) BrowseMarket(context.Context, *CareerScopedRequest) (*PlayersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BrowseMarket not implemented")
}

func (UnimplementedCareerServiceServer) ListTransfers(context.Context, *CareerScopedRequest) (*ListTransfersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTransfers not implemented")
}

func (UnimplementedCareerServiceServer) BuyPlayer(context.Context, *BuyPlayerRequest) (*BuyPlayerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BuyPlayer not implemented")
}

func (UnimplementedCareerServiceServer) RecordTransfer(context.Context, *RecordTransferRequest) (*Transfer, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordTransfer not implemented")
}

func (UnimplementedCareerServiceServer) ListDivisionTeams(context.Context, *CareerScopedRequest) (*ListTeamsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDivisionTeams not implemented")
}

func (UnimplementedCareerServiceServer) GetMyTeam(context.Context, *CareerScopedRequest) (*Team, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMyTeam not implemented")
}

func (UnimplementedCareerServiceServer) GetTeam(context.Context, *GetTeamRequest) (*Team, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTeam not implemented")
}

func (UnimplementedCareerServiceServer) ListSquadPlayers(context.Context, *CareerScopedRequest) (*PlayersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSquadPlayers not implemented")
}

func (UnimplementedCareerServiceServer) GetPlayer(context.Context, *GetPlayerRequest) (*Player, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPlayer not implemented")
}

func (UnimplementedCareerServiceServer) ListStandings(context.Context, *CareerScopedRequest) (*ListStandingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListStandings not implemented")
}

func (UnimplementedCareerServiceServer) ListRounds(context.Context, *CareerScopedRequest) (*ListRoundsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRounds not implemented")
}

func (UnimplementedCareerServiceServer) GetRound(context.Context, *GetRoundRequest) (*Round, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRound not implemented")
}

func (UnimplementedCareerServiceServer) GetMatch(context.Context, *GetMatchRequest) (*Match, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMatch not implemented")
}

func (UnimplementedCareerServiceServer) GetNextMatch(context.Context, *CareerScopedRequest) (*NextMatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNextMatch not implemented")
}

func (UnimplementedCareerServiceServer) ResizeDivision(context.Context, *ResizeDivisionRequest) (*Division, error) {
	return nil, status.Error(codes.Unimplemented, "method ResizeDivision not implemented")
}

func (UnimplementedCareerServiceServer) mustEmbedUnimplementedCareerServiceServer() {}

// RegisterCareerServiceServer registra l'implementazione sul server gRPC.
func RegisterCareerServiceServer(s grpc.ServiceRegistrar, srv CareerServiceServer) {
	s.RegisterService(&CareerService_ServiceDesc, srv)
}

// CareerService_ServiceDesc descrive il servizio senza codice generato:
// ogni metodo decodifica la richiesta con il codec della connessione.
var CareerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CareerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListCareers", CareerServiceServer.ListCareers),
		unary("GetCareer", CareerServiceServer.GetCareer),
		unary("CreateCareer", CareerServiceServer.CreateCareer),
		unary("DeleteCareer", CareerServiceServer.DeleteCareer),
		unary("UpdateProgress", CareerServiceServer.UpdateProgress),
		unary("GetTactic", CareerServiceServer.GetTactic),
		unary("CreateTactic", CareerServiceServer.CreateTactic),
		unary("UpsertTactic", CareerServiceServer.UpsertTactic),
		unary("GetLineup", CareerServiceServer.GetLineup),
		unary("SetLineup", CareerServiceServer.SetLineup),
		unary("ListForSale", CareerServiceServer.ListForSale),
		unary("DelistFromSale", CareerServiceServer.DelistFromSale),
		unary("BrowseMarket", CareerServiceServer.BrowseMarket),
		unary("ListTransfers", CareerServiceServer.ListTransfers),
		unary("BuyPlayer", CareerServiceServer.BuyPlayer),
		unary("RecordTransfer", CareerServiceServer.RecordTransfer),
		unary("ListDivisionTeams", CareerServiceServer.ListDivisionTeams),
		unary("GetMyTeam", CareerServiceServer.GetMyTeam),
		unary("GetTeam", CareerServiceServer.GetTeam),
		unary("ListSquadPlayers", CareerServiceServer.ListSquadPlayers),
		unary("GetPlayer", CareerServiceServer.GetPlayer),
		unary("ListStandings", CareerServiceServer.ListStandings),
		unary("ListRounds", CareerServiceServer.ListRounds),
		unary("GetRound", CareerServiceServer.GetRound),
		unary("GetMatch", CareerServiceServer.GetMatch),
		unary("GetNextMatch", CareerServiceServer.GetNextMatch),
		unary("ResizeDivision", CareerServiceServer.ResizeDivision),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "career/v1/career.proto",
}

// unary costruisce l'handler di un metodo unario passando dagli interceptor.
func unary[Req, Resp any](method string, call func(CareerServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CareerServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CareerServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod ritorna il nome completo "/career.v1.CareerService/<metodo>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CareerServiceClient e' il lato client del contratto career.v1.
type CareerServiceClient interface {
	ListCareers(ctx context.Context, in *ListCareersRequest, opts ...grpc.CallOption) (*ListCareersResponse, error)
	GetCareer(ctx context.Context, in *GetCareerRequest, opts ...grpc.CallOption) (*Career, error)
	CreateCareer(ctx context.Context, in *CreateCareerRequest, opts ...grpc.CallOption) (*Career, error)
	DeleteCareer(ctx context.Context, in *DeleteCareerRequest, opts ...grpc.CallOption) (*DeleteCareerResponse, error)
	UpdateProgress(ctx context.Context, in *UpdateProgressRequest, opts ...grpc.CallOption) (*Career, error)
	GetTactic(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*Tactic, error)
	CreateTactic(ctx context.Context, in *TacticRequest, opts ...grpc.CallOption) (*Tactic, error)
	UpsertTactic(ctx context.Context, in *TacticRequest, opts ...grpc.CallOption) (*Tactic, error)
	GetLineup(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*GetLineupResponse, error)
	SetLineup(ctx context.Context, in *SetLineupRequest, opts ...grpc.CallOption) (*Lineup, error)
	ListForSale(ctx context.Context, in *ListForSaleRequest, opts ...grpc.CallOption) (*Player, error)
	DelistFromSale(ctx context.Context, in *DelistFromSaleRequest, opts ...grpc.CallOption) (*Player, error)
	BrowseMarket(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*PlayersResponse, error)
	ListTransfers(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*ListTransfersResponse, error)
	BuyPlayer(ctx context.Context, in *BuyPlayerRequest, opts ...grpc.CallOption) (*BuyPlayerResponse, error)
	RecordTransfer(ctx context.Context, in *RecordTransferRequest, opts ...grpc.CallOption) (*Transfer, error)
	ListDivisionTeams(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*ListTeamsResponse, error)
	GetMyTeam(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*Team, error)
	GetTeam(ctx context.Context, in *GetTeamRequest, opts ...grpc.CallOption) (*Team, error)
	ListSquadPlayers(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*PlayersResponse, error)
	GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*Player, error)
	ListStandings(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*ListStandingsResponse, error)
	ListRounds(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*ListRoundsResponse, error)
	GetRound(ctx context.Context, in *GetRoundRequest, opts ...grpc.CallOption) (*Round, error)
	GetMatch(ctx context.Context, in *GetMatchRequest, opts ...grpc.CallOption) (*Match, error)
	GetNextMatch(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*NextMatchResponse, error)
	ResizeDivision(ctx context.Context, in *ResizeDivisionRequest, opts ...grpc.CallOption) (*Division, error)
}

type careerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCareerServiceClient crea il client; le chiamate usano sempre il codec JSON.
func NewCareerServiceClient(cc grpc.ClientConnInterface) CareerServiceClient {
	return &careerServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(grpcx.CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *careerServiceClient) ListCareers(ctx context.Context, in *ListCareersRequest, opts ...grpc.CallOption) (*ListCareersResponse, error) {
	return invoke[ListCareersResponse](ctx, c.cc, "ListCareers", in, opts)
}

func (c *careerServiceClient) GetCareer(ctx context.Context, in *GetCareerRequest, opts ...grpc.CallOption) (*Career, error) {
	return invoke[Career](ctx, c.cc, "GetCareer", in, opts)
}

func (c *careerServiceClient) CreateCareer(ctx context.Context, in *CreateCareerRequest, opts ...grpc.CallOption) (*Career, error) {
	return invoke[Career](ctx, c.cc, "CreateCareer", in, opts)
}

func (c *careerServiceClient) DeleteCareer(ctx context.Context, in *DeleteCareerRequest, opts ...grpc.CallOption) (*DeleteCareerResponse, error) {
	return invoke[DeleteCareerResponse](ctx, c.cc, "DeleteCareer", in, opts)
}

func (c *careerServiceClient) UpdateProgress(ctx context.Context, in *UpdateProgressRequest, opts ...grpc.CallOption) (*Career, error) {
	return invoke[Career](ctx, c.cc, "UpdateProgress", in, opts)
}

func (c *careerServiceClient) GetTactic(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*Tactic, error) {
	return invoke[Tactic](ctx, c.cc, "GetTactic", in, opts)
}

func (c *careerServiceClient) CreateTactic(ctx context.Context, in *TacticRequest, opts ...grpc.CallOption) (*Tactic, error) {
	return invoke[Tactic](ctx, c.cc, "CreateTactic", in, opts)
}

func (c *careerServiceClient) UpsertTactic(ctx context.Context, in *TacticRequest, opts ...grpc.CallOption) (*Tactic, error) {
	return invoke[Tactic](ctx, c.cc, "UpsertTactic", in, opts)
}

func (c *careerServiceClient) GetLineup(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*GetLineupResponse, error) {
	return invoke[GetLineupResponse](ctx, c.cc, "GetLineup", in, opts)
}

func (c *careerServiceClient) SetLineup(ctx context.Context, in *SetLineupRequest, opts ...grpc.CallOption) (*Lineup, error) {
	return invoke[Lineup](ctx, c.cc, "SetLineup", in, opts)
}

func (c *careerServiceClient) ListForSale(ctx context.Context, in *ListForSaleRequest, opts ...grpc.CallOption) (*Player, error) {
	return invoke[Player](ctx, c.cc, "ListForSale", in, opts)
}

func (c *careerServiceClient) DelistFromSale(ctx context.Context, in *DelistFromSaleRequest, opts ...grpc.CallOption) (*Player, error) {
	return invoke[Player](ctx, c.cc, "DelistFromSale", in, opts)
}

func (c *careerServiceClient) BrowseMarket(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*PlayersResponse, error) {
	return invoke[PlayersResponse](ctx, c.cc, "BrowseMarket", in, opts)
}

func (c *careerServiceClient) ListTransfers(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*ListTransfersResponse, error) {
	return invoke[ListTransfersResponse](ctx, c.cc, "ListTransfers", in, opts)
}

func (c *careerServiceClient) BuyPlayer(ctx context.Context, in *BuyPlayerRequest, opts ...grpc.CallOption) (*BuyPlayerResponse, error) {
	return invoke[BuyPlayerResponse](ctx, c.cc, "BuyPlayer", in, opts)
}

func (c *careerServiceClient) RecordTransfer(ctx context.Context, in *RecordTransferRequest, opts ...grpc.CallOption) (*Transfer, error) {
	return invoke[Transfer](ctx, c.cc, "RecordTransfer", in, opts)
}

func (c *careerServiceClient) ListDivisionTeams(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*ListTeamsResponse, error) {
	return invoke[ListTeamsResponse](ctx, c.cc, "ListDivisionTeams", in, opts)
}

func (c *careerServiceClient) GetMyTeam(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*Team, error) {
	return invoke[Team](ctx, c.cc, "GetMyTeam", in, opts)
}

func (c *careerServiceClient) GetTeam(ctx context.Context, in *GetTeamRequest, opts ...grpc.CallOption) (*Team, error) {
	return invoke[Team](ctx, c.cc, "GetTeam", in, opts)
}

func (c *careerServiceClient) ListSquadPlayers(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*PlayersResponse, error) {
	return invoke[PlayersResponse](ctx, c.cc, "ListSquadPlayers", in, opts)
}

func (c *careerServiceClient) GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*Player, error) {
	return invoke[Player](ctx, c.cc, "GetPlayer", in, opts)
}

func (c *careerServiceClient) ListStandings(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*ListStandingsResponse, error) {
	return invoke[ListStandingsResponse](ctx, c.cc, "ListStandings", in, opts)
}

func (c *careerServiceClient) ListRounds(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*ListRoundsResponse, error) {
	return invoke[ListRoundsResponse](ctx, c.cc, "ListRounds", in, opts)
}

func (c *careerServiceClient) GetRound(ctx context.Context, in *GetRoundRequest, opts ...grpc.CallOption) (*Round, error) {
	return invoke[Round](ctx, c.cc, "GetRound", in, opts)
}

func (c *careerServiceClient) GetMatch(ctx context.Context, in *GetMatchRequest, opts ...grpc.CallOption) (*Match, error) {
	return invoke[Match](ctx, c.cc, "GetMatch", in, opts)
}

func (c *careerServiceClient) GetNextMatch(ctx context.Context, in *CareerScopedRequest, opts ...grpc.CallOption) (*NextMatchResponse, error) {
	return invoke[NextMatchResponse](ctx, c.cc, "GetNextMatch", in, opts)
}

func (c *careerServiceClient) ResizeDivision(ctx context.Context, in *ResizeDivisionRequest, opts ...grpc.CallOption) (*Division, error) {
	return invoke[Division](ctx, c.cc, "ResizeDivision", in, opts)
}
