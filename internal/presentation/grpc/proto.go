package grpc

// proto.go defines the gRPC server interface derived from
// suretrust/underwriting/v1/underwriting.proto. This file serves as a
// stand-in for buf-generated code; once `buf generate` is run, replace it
// with the generated package import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnderwritingServiceServer is the server API for UnderwritingService.
type UnderwritingServiceServer interface {
	ProcessApplication(context.Context, *ProcessApplicationRequest) (*ProcessApplicationResponse, error)
	ProcessBatch(context.Context, *ProcessBatchRequest) (*ProcessBatchResponse, error)
	GetMetrics(context.Context, *GetMetricsRequest) (*GetMetricsResponse, error)
	mustEmbedUnimplementedUnderwritingServiceServer()
}

// UnimplementedUnderwritingServiceServer provides forward-compatible default implementations.
type UnimplementedUnderwritingServiceServer struct{}

func (UnimplementedUnderwritingServiceServer) ProcessApplication(context.Context, *ProcessApplicationRequest) (*ProcessApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessApplication not implemented")
}
func (UnimplementedUnderwritingServiceServer) ProcessBatch(context.Context, *ProcessBatchRequest) (*ProcessBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessBatch not implemented")
}
func (UnimplementedUnderwritingServiceServer) GetMetrics(context.Context, *GetMetricsRequest) (*GetMetricsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMetrics not implemented")
}
func (UnimplementedUnderwritingServiceServer) mustEmbedUnimplementedUnderwritingServiceServer() {}

// RegisterUnderwritingServiceServer registers the server with the gRPC server.
func RegisterUnderwritingServiceServer(s *grpclib.Server, srv UnderwritingServiceServer) {
	s.RegisterService(&_UnderwritingService_serviceDesc, srv)
}

var _UnderwritingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "suretrust.underwriting.v1.UnderwritingService",
	HandlerType: (*UnderwritingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ProcessApplication", Handler: _UnderwritingService_ProcessApplication_Handler},
		{MethodName: "ProcessBatch", Handler: _UnderwritingService_ProcessBatch_Handler},
		{MethodName: "GetMetrics", Handler: _UnderwritingService_GetMetrics_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _UnderwritingService_ProcessApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ProcessApplicationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(UnderwritingServiceServer).ProcessApplication(ctx, req)
}

func _UnderwritingService_ProcessBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ProcessBatchRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(UnderwritingServiceServer).ProcessBatch(ctx, req)
}

func _UnderwritingService_GetMetrics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetMetricsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(UnderwritingServiceServer).GetMetrics(ctx, req)
}
