package lsp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/rogervila/supercollider-vscode/internal/block"
	"github.com/rogervila/supercollider-vscode/internal/lang"
)

// Workspace commands exposed to the client. All of them route through the
// interpreter supervisor.
const (
	cmdEvaluate      = "supercollider.evaluate"
	cmdStartInterp   = "supercollider.startInterpreter"
	cmdStopInterp    = "supercollider.stopInterpreter"
	cmdBootServer    = "supercollider.bootServer"
	cmdRebootServer  = "supercollider.rebootServer"
	cmdKillServer    = "supercollider.killServer"
	cmdStopAllSounds = "supercollider.stopAllSounds"
)

var commands = []string{
	cmdEvaluate,
	cmdStartInterp,
	cmdStopInterp,
	cmdBootServer,
	cmdRebootServer,
	cmdKillServer,
	cmdStopAllSounds,
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	// The client's sclang path setting arrives as an initialization option.
	if opts, ok := params.InitializationOptions.(map[string]any); ok {
		if cmd, ok := opts["sclangCmd"].(string); ok {
			s.interp.SetCommand(cmd)
		}
	}

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindFull
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: commands,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

// initialized forwards the supervisor's transcripts and notifications to the
// client: transcript chunks as log messages, errors as blocking messages.
func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.interp.Post().SetSink(func(chunk string) {
		ctx.Notify(protocol.ServerWindowLogMessage, &protocol.LogMessageParams{
			Type:    protocol.MessageTypeInfo,
			Message: strings.TrimRight(chunk, "\n"),
		})
	})
	s.interp.Output().SetSink(func(chunk string) {
		ctx.Notify(protocol.ServerWindowLogMessage, &protocol.LogMessageParams{
			Type:    protocol.MessageTypeLog,
			Message: chunk,
		})
	})
	s.interp.SetNotifier(func(msg string) {
		ctx.Notify(protocol.ServerWindowShowMessage, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeError,
			Message: msg,
		})
	})

	s.log.Info("client initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.interp.Stop()
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.Open(string(params.TextDocument.URI), params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.docs.ApplyChanges(string(params.TextDocument.URI), params.ContentChanges)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(string(params.TextDocument.URI))
	return nil
}

func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}

	prefix := doc.PrefixAt(doc.OffsetAt(params.Position))
	items := lang.Completions(prefix)
	if len(items) == 0 {
		return nil, nil
	}

	result := make([]protocol.CompletionItem, 0, len(items))
	for _, item := range items {
		kind := completionKind(item.Kind)
		ci := protocol.CompletionItem{
			Label: item.Label,
			Kind:  &kind,
		}
		if item.Doc != "" {
			ci.Documentation = protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: item.Doc,
			}
		}
		result = append(result, ci)
	}
	return result, nil
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}

	word := doc.WordAt(doc.OffsetAt(params.Position))
	help, ok := lang.HoverDoc(word)
	if !ok {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: help,
		},
	}, nil
}

// evaluateArgs is the argument object of the supercollider.evaluate command.
type evaluateArgs struct {
	URI       string           `json:"uri"`
	Line      protocol.UInteger `json:"line"`
	Character protocol.UInteger `json:"character"`
	Selection string           `json:"selection"`
}

func (s *Server) workspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	switch params.Command {
	case cmdEvaluate:
		return nil, s.evaluate(params.Arguments)
	case cmdStartInterp:
		return nil, s.interp.Start()
	case cmdStopInterp:
		s.interp.Stop()
		return nil, nil
	case cmdBootServer:
		return nil, s.interp.BootServer()
	case cmdRebootServer:
		return nil, s.interp.RebootServer()
	case cmdKillServer:
		return nil, s.interp.KillServer()
	case cmdStopAllSounds:
		return nil, s.interp.StopAllSounds()
	default:
		return nil, fmt.Errorf("unknown command %q", params.Command)
	}
}

// evaluate locates the fragment for the client's cursor (or selection) and
// dispatches it to the interpreter.
func (s *Server) evaluate(arguments []any) error {
	args, err := decodeEvaluateArgs(arguments)
	if err != nil {
		return err
	}

	doc, ok := s.docs.Get(args.URI)
	if !ok {
		return fmt.Errorf("document %q is not open", args.URI)
	}

	offset := doc.OffsetAt(protocol.Position{Line: args.Line, Character: args.Character})
	fragment := block.Locate(doc.Text, offset, args.Selection)
	return s.interp.Execute(fragment)
}

func decodeEvaluateArgs(arguments []any) (evaluateArgs, error) {
	var args evaluateArgs
	if len(arguments) == 0 {
		return args, fmt.Errorf("%s requires an argument object", cmdEvaluate)
	}
	data, err := json.Marshal(arguments[0])
	if err != nil {
		return args, fmt.Errorf("encode %s arguments: %w", cmdEvaluate, err)
	}
	if err := json.Unmarshal(data, &args); err != nil {
		return args, fmt.Errorf("decode %s arguments: %w", cmdEvaluate, err)
	}
	return args, nil
}

func completionKind(kind lang.Kind) protocol.CompletionItemKind {
	switch kind {
	case lang.KindClass:
		return protocol.CompletionItemKindClass
	case lang.KindMethod:
		return protocol.CompletionItemKindMethod
	default:
		return protocol.CompletionItemKindKeyword
	}
}
