package manifest

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/yaml"
	sigsyaml "sigs.k8s.io/yaml"
)

// Reader yields the documents of a multi-document YAML stream one at a time, in file order.
type Reader struct {
	docs   *yaml.YAMLReader
	closer io.Closer
	index  int
}

// Open opens the manifest at path for reading.
// The caller must Close the returned Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: IOError, Err: err}
	}
	log.Debugf("reading manifest %s", path)
	return NewReader(f), nil
}

// NewReader reads documents from r. If r is an io.Closer it is closed by Close.
func NewReader(r io.Reader) *Reader {
	split := &separatorSplitter{src: bufio.NewReader(r)}
	reader := &Reader{docs: yaml.NewYAMLReader(bufio.NewReader(split))}
	if c, ok := r.(io.Closer); ok {
		reader.closer = c
	}
	return reader
}

// Next decodes the next document. It returns io.EOF once the stream is exhausted.
// Documents that are empty or only hold comments come back with no fields set.
func (r *Reader) Next() (*Document, error) {
	raw, err := r.docs.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		kind := ParseError
		if errors.As(err, new(*fs.PathError)) {
			kind = IOError
		}
		return nil, &Error{Kind: kind, Document: r.index + 1, Err: err}
	}
	r.index++
	return Decode(raw, r.index)
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// kindOnly reads the kind of any mapping, whatever its type.
type kindOnly struct {
	Kind interface{} `json:"kind"`
}

// Decode decodes a single YAML document. Only claims are decoded beyond their
// kind, so unrelated documents never fail on fields this tool ignores.
// A document that is not a mapping is a ParseError.
func Decode(raw []byte, index int) (*Document, error) {
	var head kindOnly
	if err := sigsyaml.Unmarshal(raw, &head); err != nil {
		return nil, &Error{Kind: ParseError, Document: index, Err: err}
	}
	doc := &Document{Index: index}
	kind, ok := head.Kind.(string)
	if !ok {
		return doc, nil
	}
	doc.Kind = kind
	if !doc.IsClaim() {
		return doc, nil
	}
	if err := sigsyaml.Unmarshal(raw, doc); err != nil {
		return nil, &Error{Kind: ParseError, Document: index, Err: err}
	}
	return doc, nil
}

// separatorSplitter moves content written on a "---" line, as in
// "--- {kind: ConfigMap}", onto a line of its own. YAMLReader only accepts
// comments after a document separator.
type separatorSplitter struct {
	src     *bufio.Reader
	pending []byte
	err     error
}

func (s *separatorSplitter) Read(p []byte) (int, error) {
	for len(s.pending) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		var line string
		line, s.err = s.src.ReadString('\n')
		s.pending = []byte(splitSeparator(line))
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func splitSeparator(line string) string {
	rest, ok := strings.CutPrefix(line, "---")
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return line
	}
	content := strings.TrimLeft(rest, " \t")
	if strings.TrimSpace(content) == "" || strings.HasPrefix(content, "#") {
		return line
	}
	return "---\n" + content
}
