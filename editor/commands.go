package editor

import (
	"strconv"
	"strings"
)

// executeCommand runs the command line typed in Command mode.
//
// Commands (tokens are matched literally):
//
//	q, quit, !q            quit
//	w [path]               write the current buffer
//	wq [path]              write, then quit if the write succeeded
//	bn, bnext              next buffer
//	bp, bprev              previous buffer
//	bx, bc, bclose         close the current buffer
//	baex, ballbutexcept    close every buffer but the current one
//	e <path>               open path and switch to it
//	<digits>               switch to the buffer with that id
//
// w and wq on a buffer without a path open the save dialog instead. Every
// other outcome returns to Normal mode with an empty command line.
func (e *Editor) executeCommand() {
	line := strings.TrimSpace(string(e.input))
	e.setMode(ModeNormal)

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	e.log.Debug("command", "line", line)

	cmd, args := parts[0], parts[1:]
	switch cmd {
	case "q", "quit", "!q":
		e.quit = true
	case "w":
		e.writeCommand(args, false)
	case "wq":
		e.writeCommand(args, true)
	case "bn", "bnext":
		e.nextBuffer()
	case "bp", "bprev":
		e.prevBuffer()
	case "bx", "bc", "bclose":
		e.closeCurrent()
	case "baex", "ballbutexcept":
		e.closeOthers()
	case "e":
		e.editCommand(args)
	default:
		if id, ok := parseBufferID(cmd); ok {
			if !e.switchBuffer(id) {
				e.fail("no buffer %d", id)
			}
			return
		}
		e.log.Warn("unknown command", "command", cmd)
		e.fail("not an editor command: %s", cmd)
	}
}

func (e *Editor) writeCommand(args []string, quit bool) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" && e.CurrentBuffer().Path() == "" {
		e.setMode(ModeSaveDialog)
		return
	}
	if e.save(path) && quit {
		e.quit = true
	}
}

func (e *Editor) editCommand(args []string) {
	if len(args) == 0 {
		e.fail("no file name")
		return
	}
	if err := e.OpenFile(args[0]); err != nil {
		e.log.Warn("open failed", "path", args[0], "err", err)
		e.fail("cannot open %s", args[0])
	}
}

// parseBufferID accepts a token made only of decimal digits.
func parseBufferID(tok string) (int, bool) {
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return id, true
}
