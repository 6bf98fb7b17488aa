package handler_test

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-go-api/internal/dto"
)

const subjectEnvelopeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["success", "message", "data"],
  "properties": {
    "success": {"type": "boolean"},
    "message": {"type": "string"},
    "data": {
      "type": "object",
      "required": ["id", "name", "description", "code", "credits", "teacher_id", "created_at", "updated_at"],
      "properties": {
        "id": {"type": "integer", "minimum": 1},
        "name": {"type": "string", "minLength": 1},
        "description": {"type": "string"},
        "code": {"type": "string", "minLength": 1},
        "credits": {"type": "integer", "minimum": 0},
        "teacher_id": {"type": "integer", "minimum": 1},
        "created_at": {"type": "string"},
        "updated_at": {"type": "string"}
      },
      "additionalProperties": false
    }
  }
}`

// Subject payloads are consumed by external clients; the shape is part of
// the API contract.
func TestSubjectResponseContract(t *testing.T) {
	compiler := jsonschema.NewCompiler()
	require.NoError(t, compiler.AddResource("subject_envelope.schema.json", strings.NewReader(subjectEnvelopeSchema)))
	schema, err := compiler.Compile("subject_envelope.schema.json")
	require.NoError(t, err)

	app, db, tokens := setupApp(t)
	teacher := createAccount(t, db, "teacher1", true)
	auth := bearerToken(t, tokens, teacher)

	resp := doJSON(t, app, fiber.MethodPost, "/api/teacher/subjects", auth, dto.SubjectCreateRequest{
		Name:        "Algorithms",
		Description: "Sorting and searching",
		Code:        "ALG-101",
		Credits:     6,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var payload interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NoError(t, schema.Validate(payload))
}
