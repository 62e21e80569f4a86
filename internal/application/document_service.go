package application

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports"
)

const DefaultDocumentBaseURL = "https://app.tekoai.com/bot_document"

type DocumentService struct {
	sessions ports.SessionStore
	resolver *BotResolver
	library  ports.DocumentLibrary
	baseURL  string
}

func NewDocumentService(sessions ports.SessionStore, resolver *BotResolver, library ports.DocumentLibrary, baseURL string) *DocumentService {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultDocumentBaseURL
	}

	return &DocumentService{
		sessions: sessions,
		resolver: resolver,
		library:  library,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (s *DocumentService) List(ctx context.Context, query ListDocumentsQuery) (DocumentList, error) {
	bot, err := s.resolveBot(ctx, query.BotID)
	if err != nil {
		return DocumentList{}, err
	}

	documents, err := s.library.ListDocuments(ctx, bot.ID)
	if err != nil {
		return DocumentList{}, fmt.Errorf("list documents: %w", err)
	}

	return DocumentList{Bot: bot, Documents: sortDocuments(filterDocuments(documents, query.Search), query.Sort)}, nil
}

// URL returns the download location of a document: {base}/{bot}/{document}.{ext}.
func (s *DocumentService) URL(ctx context.Context, botID domain.BotID, documentID string) (string, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return "", fmt.Errorf("%w: document id", ErrMissingField)
	}

	list, err := s.List(ctx, ListDocumentsQuery{BotID: botID})
	if err != nil {
		return "", err
	}

	for _, document := range list.Documents {
		if document.ID != documentID {
			continue
		}

		name := url.PathEscape(document.ID)
		if ext := document.Extension(); ext != "" {
			name += "." + url.PathEscape(ext)
		}
		return s.baseURL + "/" + url.PathEscape(string(list.Bot.ID)) + "/" + name, nil
	}

	return "", fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, documentID)
}

func (s *DocumentService) resolveBot(ctx context.Context, explicit domain.BotID) (domain.Bot, error) {
	return resolveSessionBot(ctx, s.sessions, s.resolver, explicit)
}

func filterDocuments(documents []domain.Document, search string) []domain.Document {
	needle := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]domain.Document, 0, len(documents))
	for _, document := range documents {
		if needle == "" || strings.Contains(strings.ToLower(document.Name), needle) {
			filtered = append(filtered, document)
		}
	}

	return filtered
}

func sortDocuments(documents []domain.Document, order SortOrder) []domain.Document {
	switch order {
	case SortName:
		sort.SliceStable(documents, func(i, j int) bool {
			return strings.ToLower(documents[i].Name) < strings.ToLower(documents[j].Name)
		})
	case SortTime:
		sort.SliceStable(documents, func(i, j int) bool {
			return documents[i].UploadedAt.After(documents[j].UploadedAt)
		})
	}

	return documents
}
