package v1alpha1

import (
	"encoding/json"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// Records travel as their JSON form inside a Struct. Characters use the
// kind-tagged envelope.

func toValue(v any) (*structpb.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	value, err := structpb.NewValue(generic)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return value, nil
}

// response builds a Struct from field values that encode as JSON
func response(fields map[string]any) (*structpb.Struct, error) {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(fields))}
	for name, v := range fields {
		value, err := toValue(v)
		if err != nil {
			return nil, err
		}
		out.Fields[name] = value
	}
	return out, nil
}

// decodeField unmarshals req[name] into dst. ok is false when the field is absent.
func decodeField(req *structpb.Struct, name string, dst any) (ok bool, err error) {
	value, present := req.GetFields()[name]
	if !present {
		return false, nil
	}
	if _, isNull := value.GetKind().(*structpb.Value_NullValue); isNull {
		return false, nil
	}

	data, err := json.Marshal(value.AsInterface())
	if err != nil {
		return false, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid "+name)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid "+name)
	}
	return true, nil
}

func stringField(req *structpb.Struct, name string) string {
	return strings.TrimSpace(req.GetFields()[name].GetStringValue())
}

func boolField(req *structpb.Struct, name string) bool {
	return req.GetFields()[name].GetBoolValue()
}

func stringList(req *structpb.Struct, name string) []string {
	var out []string
	for _, v := range req.GetFields()[name].GetListValue().GetValues() {
		if s := strings.TrimSpace(v.GetStringValue()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func requireString(req *structpb.Struct, name string) (string, error) {
	v := stringField(req, name)
	if v == "" {
		return "", errors.InvalidArgumentf("%s is required", name)
	}
	return v, nil
}

func decodeCharacter(req *structpb.Struct, name string) (entities.Character, error) {
	var env entities.CharacterEnvelope
	ok, err := decodeField(req, name, &env)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.InvalidArgumentf("%s is required", name)
	}
	return env.Character()
}

func envelopes(characters []entities.Character) []entities.CharacterEnvelope {
	out := make([]entities.CharacterEnvelope, 0, len(characters))
	for _, c := range characters {
		out = append(out, entities.Envelope(c))
	}
	return out
}
