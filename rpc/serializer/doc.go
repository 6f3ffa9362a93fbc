// Package serializer provides envelope serialization for the circle IPC
// system, converting between envelope values and the bytes exchanged over
// the socket.
//
// The wire format is self-describing JSON: one field-named document per
// message, so both envelope kinds stay forward-extensible and carry no
// positional or type-marker bytes.
//
// Key Components:
//
//   - IRPCSerializer: Interface implemented by all envelope serializers,
//     covering both the request (Payload) and response (Response) side.
//
//   - jsonSerializerImpl: The JSON implementation used by the server and
//     client. Decode failures are classified as Serialization errors so the
//     endpoints can translate them into their own failure semantics.
package serializer
