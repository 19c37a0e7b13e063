package artifactfs

import "errors"

var errDiscarded = errors.New("write failed, artifact discarded")
