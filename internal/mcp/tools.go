package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"ensgraph/internal/ens"
	"ensgraph/internal/store"
)

type CreateRelationshipInput struct {
	ENSName1 string `json:"ens_name_1" jsonschema:"first ENS name"`
	ENSName2 string `json:"ens_name_2" jsonschema:"second ENS name"`
}

type ListRelationshipsInput struct {
	Limit  int `json:"limit,omitempty" jsonschema:"maximum rows to return, defaults to 100"`
	Offset int `json:"offset,omitempty" jsonschema:"rows to skip"`
}

type GetRelationshipsInput struct {
	ENSName string `json:"ens_name" jsonschema:"ENS name to look up"`
}

type DeleteRelationshipInput struct {
	ID       int64  `json:"id,omitempty" jsonschema:"relationship id to delete"`
	ENSName1 string `json:"ens_name_1,omitempty" jsonschema:"first ENS name, when deleting by pair"`
	ENSName2 string `json:"ens_name_2,omitempty" jsonschema:"second ENS name, when deleting by pair"`
}

type RelationshipOutput struct {
	ID        int64  `json:"id"`
	ENSName1  string `json:"ens_name_1"`
	ENSName2  string `json:"ens_name_2"`
	CreatedAt string `json:"created_at"`
}

type ListRelationshipsOutput struct {
	Relationships []RelationshipOutput `json:"relationships"`
}

type DeleteRelationshipOutput struct {
	Deleted RelationshipOutput `json:"deleted"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "create_relationship",
		Description: "Create a friendship edge between two ENS names",
	}, s.handleCreateRelationship)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_relationships",
		Description: "List friendship edges with pagination",
	}, s.handleListRelationships)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_relationships",
		Description: "List all friendship edges touching an ENS name",
	}, s.handleGetRelationships)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_relationship",
		Description: "Delete a friendship edge by id or by name pair",
	}, s.handleDeleteRelationship)
}

func (s *Server) handleCreateRelationship(ctx context.Context, req *sdk.CallToolRequest, input CreateRelationshipInput) (*sdk.CallToolResult, RelationshipOutput, error) {
	canonA, canonB, err := ens.ValidateAndCanonicalize(input.ENSName1, input.ENSName2)
	if err != nil {
		return nil, RelationshipOutput{}, err
	}

	rel, err := s.db.CreateRelationship(ctx, canonA, canonB)
	if err != nil {
		return nil, RelationshipOutput{}, err
	}
	return nil, relationshipOutput(*rel), nil
}

func (s *Server) handleListRelationships(ctx context.Context, req *sdk.CallToolRequest, input ListRelationshipsInput) (*sdk.CallToolResult, ListRelationshipsOutput, error) {
	rels, err := s.db.ListRelationships(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, ListRelationshipsOutput{}, err
	}
	return nil, listOutput(rels), nil
}

func (s *Server) handleGetRelationships(ctx context.Context, req *sdk.CallToolRequest, input GetRelationshipsInput) (*sdk.CallToolResult, ListRelationshipsOutput, error) {
	if input.ENSName == "" {
		return nil, ListRelationshipsOutput{}, fmt.Errorf("ens_name is required")
	}
	rels, err := s.db.GetRelationshipsByName(ctx, input.ENSName)
	if err != nil {
		return nil, ListRelationshipsOutput{}, err
	}
	return nil, listOutput(rels), nil
}

func (s *Server) handleDeleteRelationship(ctx context.Context, req *sdk.CallToolRequest, input DeleteRelationshipInput) (*sdk.CallToolResult, DeleteRelationshipOutput, error) {
	var rel *store.Relationship
	var err error

	switch {
	case input.ID != 0:
		rel, err = s.db.DeleteRelationshipByID(ctx, input.ID)
	case input.ENSName1 != "" && input.ENSName2 != "":
		rel, err = s.db.DeleteRelationshipByNames(ctx, input.ENSName1, input.ENSName2)
	default:
		return nil, DeleteRelationshipOutput{}, fmt.Errorf("either id or both ens_name_1 and ens_name_2 are required")
	}
	if err != nil {
		return nil, DeleteRelationshipOutput{}, err
	}
	return nil, DeleteRelationshipOutput{Deleted: relationshipOutput(*rel)}, nil
}

func relationshipOutput(rel store.Relationship) RelationshipOutput {
	return RelationshipOutput{
		ID:        rel.ID,
		ENSName1:  rel.NameA,
		ENSName2:  rel.NameB,
		CreatedAt: rel.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func listOutput(rels []store.Relationship) ListRelationshipsOutput {
	out := make([]RelationshipOutput, 0, len(rels))
	for _, rel := range rels {
		out = append(out, relationshipOutput(rel))
	}
	return ListRelationshipsOutput{Relationships: out}
}
