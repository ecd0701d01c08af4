package notepad

import (
	"log"

	"notepad/internal/textfile"
)

// Action is a File menu command.
type Action int

const (
	ActionNew Action = iota
	ActionOpen
	ActionSave
	ActionSaveAs
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionNew:
		return "new"
	case ActionOpen:
		return "open"
	case ActionSave:
		return "save"
	case ActionSaveAs:
		return "save-as"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Request is the dialog answer the controller is waiting for.
type Request int

const (
	RequestNone     Request = iota
	RequestDiscard          // Save / Don't Save / Cancel
	RequestOpenPath         // open file picker
	RequestSavePath         // save file picker
)

// Choice is the answer to the discard prompt.
type Choice int

const (
	ChoiceCancel Choice = iota
	ChoiceSave
	ChoiceDontSave
)

type flow struct {
	request Request
	action  Action
	resume  Action // destructive action waiting on a save started from the discard prompt
	resumes bool
}

// Pending returns the outstanding request.
func (c *Controller) Pending() Request { return c.flow.request }

// Do starts action a and returns the dialog it needs, if any. New, Open and
// Exit first pass the discard gate.
func (c *Controller) Do(a Action) Request {
	log.Printf("action %s (modified=%v)", a, c.modified)
	c.flow = flow{}
	switch a {
	case ActionNew, ActionOpen, ActionExit:
		if c.modified {
			c.flow = flow{request: RequestDiscard, action: a}
			return c.flow.request
		}
		c.proceed(a)
	case ActionSave:
		if c.path == "" {
			c.flow = flow{request: RequestSavePath, action: ActionSaveAs}
			return c.flow.request
		}
		c.writeFile()
	case ActionSaveAs:
		c.flow = flow{request: RequestSavePath, action: ActionSaveAs}
	}
	return c.flow.request
}

// proceed runs the part of a that follows a confirmed discard gate.
func (c *Controller) proceed(a Action) {
	switch a {
	case ActionNew:
		c.newFile()
	case ActionOpen:
		c.flow = flow{request: RequestOpenPath, action: ActionOpen}
	case ActionExit:
		c.quit = true
	}
}

// AnswerDiscard resolves the discard prompt. Save continues only when the
// save really cleared the modified flag.
func (c *Controller) AnswerDiscard(choice Choice) Request {
	if c.flow.request != RequestDiscard {
		return c.flow.request
	}
	a := c.flow.action
	c.flow = flow{}
	switch choice {
	case ChoiceDontSave:
		c.proceed(a)
	case ChoiceSave:
		if c.path == "" {
			c.flow = flow{request: RequestSavePath, action: ActionSaveAs, resume: a, resumes: true}
			return c.flow.request
		}
		c.writeFile()
		if !c.modified {
			c.proceed(a)
		}
	}
	return c.flow.request
}

// AnswerOpenPath resolves the open picker; ok is false when it was cancelled.
func (c *Controller) AnswerOpenPath(path string, ok bool) Request {
	if c.flow.request != RequestOpenPath {
		return c.flow.request
	}
	c.flow = flow{}
	if ok && path != "" {
		c.OpenPath(path)
	}
	return c.flow.request
}

// AnswerSavePath resolves the save picker: the path becomes the file
// reference and the document is saved to it. A pending New, Open or Exit
// resumes only if that save succeeded.
func (c *Controller) AnswerSavePath(path string, ok bool) Request {
	if c.flow.request != RequestSavePath {
		return c.flow.request
	}
	f := c.flow
	c.flow = flow{}
	if !ok || path == "" {
		return c.flow.request
	}
	c.path = absPath(textfile.WithDefaultExt(path))
	c.writeFile()
	if f.resumes && !c.modified {
		c.proceed(f.resume)
	}
	return c.flow.request
}
