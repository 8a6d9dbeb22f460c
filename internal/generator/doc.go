// Package generator is the HTTP client for the word finder generation service.
//
// The service exposes a single operation: POST a JSON body of rows, columns
// and words to the endpoint (http://localhost:8080/wordfinder by default) and
// receive a puzzle whose grid is JSON-encoded inside a JSON string.
//
//	client := generator.NewClient("")
//	result, err := client.Generate(ctx, cfg.Request())
//	if err != nil {
//	    fmt.Println(generator.ShortMessage(err))
//	    fmt.Println(generator.TroubleshootingHint(err))
//	    return err
//	}
//
// # Errors
//
// Every failure is an *Error carrying an ErrorType: transport failures are
// classified (timeout, connection refused, DNS, unreachable), non-2xx
// responses become ErrTypeHTTP with the status and the start of the body, and
// undecodable responses become ErrTypeParse. The client never retries on its
// own; IsRetryable tells callers whether offering a retry makes sense.
package generator
