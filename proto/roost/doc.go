// ABOUTME: Package doc for the committed RoostDirectory protobuf bindings
// ABOUTME: Explains why these files are hand-maintained rather than protoc output

// Package roostpb holds the wire types for the RoostDirectory service.
//
// The bindings in this package are hand-maintained so that building the
// module never requires a protoc toolchain. directory.proto remains the
// source of truth; descriptor.go assembles the matching FileDescriptorProto
// at init time and the message structs in directory.pb.go follow the layout
// protoc-gen-go would emit. When the proto changes, update directory.proto,
// descriptor.go, directory.pb.go, and directory_grpc.pb.go together.
package roostpb
