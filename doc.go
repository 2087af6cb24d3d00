// package stripeapi provides a strongly typed client for the Stripe API. The
// resources of the API live in their own packages, billing, connect, core,
// fraud, issuing, product, terminal, and treasury. Each endpoint is a request
// builder in those packages, and this package provides the core that sends
// those requests and decodes their responses.
//
// stripeapi.Client is the main way to talk to the Stripe API. Below is a brief
// example as to how a billing portal session would be created for a customer,
//
//     client := stripeapi.New(os.Getenv("STRIPE_SECRET_KEY"))
//
//     sess, err := billing.NewCreateSession("cus_123").
//         ReturnURL("https://example.com/account").
//         Send(ctx, client)
//
//     if err != nil {
//         panic(err) // Don't actually do this.
//     }
//
//     http.Redirect(w, r, sess.URL, http.StatusSeeOther)
//
// the builder encodes its parameters into the bracketed form expected by
// Stripe, and the Client sends them along with the secret key, and the
// Stripe-Version header. Optional parameters that are not set are not sent at
// all. The response is then decoded into the billing.Session type.
//
// Errors returned from a request can be inspected with errors.As to find out
// what went wrong,
//
//     var stripeErr *stripeapi.Error
//
//     if errors.As(err, &stripeErr) {
//         if stripeErr.Code == stripeapi.ErrorCodeCardDeclined {
//             // Ask for another card.
//         }
//     }
//
// An *Error is returned when Stripe responds with an error, a *StatusError
// when Stripe responds with a non-2xx status that does not carry an error, a
// *TransportError when the request could not be sent, and a *DecodeError when
// the response could not be decoded. If the context of the request is
// canceled then the returned error will wrap ErrCanceled.
//
// List endpoints can be iterated over with Paginate, which will request each
// page of the list as it is needed,
//
//     it := product.NewListPromotionCodes().Limit(100).Paginate(ctx, client)
//
//     for code, err := range it.All() {
//         if err != nil {
//             panic(err) // Handle error properly.
//         }
//         fmt.Println(code.Code)
//     }
//
// Enums received from Stripe are open, new values that Stripe adds are kept as
// they were received, and can be detected with the Known method of the enum.
// Enums sent to Stripe are closed, and parsing an unknown value will fail with
// an *EnumParseError.
package stripeapi
