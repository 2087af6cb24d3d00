package stripeapi

// ErrorCode is the code of an Error returned by the Stripe API. This is an open
// enum, codes Stripe adds after this list was generated are kept as they were
// received.
type ErrorCode string

const (
	ErrorCodeAccountClosed                          ErrorCode = "account_closed"
	ErrorCodeAccountCountryInvalidAddress           ErrorCode = "account_country_invalid_address"
	ErrorCodeAccountInformationMismatch             ErrorCode = "account_information_mismatch"
	ErrorCodeAccountInvalid                         ErrorCode = "account_invalid"
	ErrorCodeAccountNumberInvalid                   ErrorCode = "account_number_invalid"
	ErrorCodeAcssDebitSessionIncomplete             ErrorCode = "acss_debit_session_incomplete"
	ErrorCodeAlipayUpgradeRequired                  ErrorCode = "alipay_upgrade_required"
	ErrorCodeAmountTooLarge                         ErrorCode = "amount_too_large"
	ErrorCodeAmountTooSmall                         ErrorCode = "amount_too_small"
	ErrorCodeAPIKeyExpired                          ErrorCode = "api_key_expired"
	ErrorCodeApplicationFeesNotAllowed              ErrorCode = "application_fees_not_allowed"
	ErrorCodeAuthenticationRequired                 ErrorCode = "authentication_required"
	ErrorCodeBalanceInsufficient                    ErrorCode = "balance_insufficient"
	ErrorCodeBalanceInvalidParameter                ErrorCode = "balance_invalid_parameter"
	ErrorCodeBankAccountBadRoutingNumbers           ErrorCode = "bank_account_bad_routing_numbers"
	ErrorCodeBankAccountDeclined                    ErrorCode = "bank_account_declined"
	ErrorCodeBankAccountExists                      ErrorCode = "bank_account_exists"
	ErrorCodeBankAccountRestricted                  ErrorCode = "bank_account_restricted"
	ErrorCodeBankAccountUnusable                    ErrorCode = "bank_account_unusable"
	ErrorCodeBankAccountUnverified                  ErrorCode = "bank_account_unverified"
	ErrorCodeBankAccountVerificationFailed          ErrorCode = "bank_account_verification_failed"
	ErrorCodeBillingInvalidMandate                  ErrorCode = "billing_invalid_mandate"
	ErrorCodeBillingPolicyRemoteFunctionTimeout     ErrorCode = "billing_policy_remote_function_timeout"
	ErrorCodeBillingPolicyRemoteFunctionUnreachable ErrorCode = "billing_policy_remote_function_unreachable"
	ErrorCodeBitcoinUpgradeRequired                 ErrorCode = "bitcoin_upgrade_required"
	ErrorCodeCaptureChargeAuthorizationExpired      ErrorCode = "capture_charge_authorization_expired"
	ErrorCodeCaptureUnauthorizedPayment             ErrorCode = "capture_unauthorized_payment"
	ErrorCodeCardDeclineRateLimitExceeded           ErrorCode = "card_decline_rate_limit_exceeded"
	ErrorCodeCardDeclined                           ErrorCode = "card_declined"
	ErrorCodeCardholderPhoneNumberRequired          ErrorCode = "cardholder_phone_number_required"
	ErrorCodeChargeAlreadyCaptured                  ErrorCode = "charge_already_captured"
	ErrorCodeChargeAlreadyRefunded                  ErrorCode = "charge_already_refunded"
	ErrorCodeChargeDisputed                         ErrorCode = "charge_disputed"
	ErrorCodeChargeExceedsSourceLimit               ErrorCode = "charge_exceeds_source_limit"
	ErrorCodeChargeExpiredForCapture                ErrorCode = "charge_expired_for_capture"
	ErrorCodeChargeInvalidParameter                 ErrorCode = "charge_invalid_parameter"
	ErrorCodeChargeNotRefundable                    ErrorCode = "charge_not_refundable"
	ErrorCodeClearingCodeUnsupported                ErrorCode = "clearing_code_unsupported"
	ErrorCodeCountryCodeInvalid                     ErrorCode = "country_code_invalid"
	ErrorCodeCountryUnsupported                     ErrorCode = "country_unsupported"
	ErrorCodeCouponExpired                          ErrorCode = "coupon_expired"
	ErrorCodeCustomerMaxPaymentMethods              ErrorCode = "customer_max_payment_methods"
	ErrorCodeCustomerMaxSubscriptions               ErrorCode = "customer_max_subscriptions"
	ErrorCodeCustomerTaxLocationInvalid             ErrorCode = "customer_tax_location_invalid"
	ErrorCodeDebitNotAuthorized                     ErrorCode = "debit_not_authorized"
	ErrorCodeEmailInvalid                           ErrorCode = "email_invalid"
	ErrorCodeExpiredCard                            ErrorCode = "expired_card"
	ErrorCodeFinancialConnectionsAccountInactive    ErrorCode = "financial_connections_account_inactive"
	ErrorCodeForwardingAPIInactive                  ErrorCode = "forwarding_api_inactive"
	ErrorCodeForwardingAPIInvalidParameter          ErrorCode = "forwarding_api_invalid_parameter"
	ErrorCodeForwardingAPIUpstreamConnectionError   ErrorCode = "forwarding_api_upstream_connection_error"
	ErrorCodeForwardingAPIUpstreamConnectionTimeout ErrorCode = "forwarding_api_upstream_connection_timeout"
	ErrorCodeIdempotencyKeyInUse                    ErrorCode = "idempotency_key_in_use"
	ErrorCodeIncorrectAddress                       ErrorCode = "incorrect_address"
	ErrorCodeIncorrectCVC                           ErrorCode = "incorrect_cvc"
	ErrorCodeIncorrectNumber                        ErrorCode = "incorrect_number"
	ErrorCodeIncorrectZip                           ErrorCode = "incorrect_zip"
	ErrorCodeInstantPayoutsConfigDisabled           ErrorCode = "instant_payouts_config_disabled"
	ErrorCodeInstantPayoutsCurrencyDisabled         ErrorCode = "instant_payouts_currency_disabled"
	ErrorCodeInstantPayoutsLimitExceeded            ErrorCode = "instant_payouts_limit_exceeded"
	ErrorCodeInstantPayoutsUnsupported              ErrorCode = "instant_payouts_unsupported"
	ErrorCodeInsufficientFunds                      ErrorCode = "insufficient_funds"
	ErrorCodeIntentInvalidState                     ErrorCode = "intent_invalid_state"
	ErrorCodeIntentVerificationMethodMissing        ErrorCode = "intent_verification_method_missing"
	ErrorCodeInvalidCardType                        ErrorCode = "invalid_card_type"
	ErrorCodeInvalidCharacters                      ErrorCode = "invalid_characters"
	ErrorCodeInvalidChargeAmount                    ErrorCode = "invalid_charge_amount"
	ErrorCodeInvalidCVC                             ErrorCode = "invalid_cvc"
	ErrorCodeInvalidExpiryMonth                     ErrorCode = "invalid_expiry_month"
	ErrorCodeInvalidExpiryYear                      ErrorCode = "invalid_expiry_year"
	ErrorCodeInvalidNumber                          ErrorCode = "invalid_number"
	ErrorCodeInvalidSourceUsage                     ErrorCode = "invalid_source_usage"
	ErrorCodeInvalidTaxLocation                     ErrorCode = "invalid_tax_location"
	ErrorCodeInvoiceNoCustomerLineItems             ErrorCode = "invoice_no_customer_line_items"
	ErrorCodeInvoiceNoPaymentMethodTypes            ErrorCode = "invoice_no_payment_method_types"
	ErrorCodeInvoiceNoSubscriptionLineItems         ErrorCode = "invoice_no_subscription_line_items"
	ErrorCodeInvoiceNotEditable                     ErrorCode = "invoice_not_editable"
	ErrorCodeInvoiceOnBehalfOfNotEditable           ErrorCode = "invoice_on_behalf_of_not_editable"
	ErrorCodeInvoicePaymentIntentRequiresAction     ErrorCode = "invoice_payment_intent_requires_action"
	ErrorCodeInvoiceUpcomingNone                    ErrorCode = "invoice_upcoming_none"
	ErrorCodeLivemodeMismatch                       ErrorCode = "livemode_mismatch"
	ErrorCodeLockTimeout                            ErrorCode = "lock_timeout"
	ErrorCodeMissing                                ErrorCode = "missing"
	ErrorCodeNoAccount                              ErrorCode = "no_account"
	ErrorCodeNotAllowedOnStandardAccount            ErrorCode = "not_allowed_on_standard_account"
	ErrorCodeOutOfInventory                         ErrorCode = "out_of_inventory"
	ErrorCodeOwnershipDeclarationNotAllowed         ErrorCode = "ownership_declaration_not_allowed"
	ErrorCodeParameterInvalidEmpty                  ErrorCode = "parameter_invalid_empty"
	ErrorCodeParameterInvalidInteger                ErrorCode = "parameter_invalid_integer"
	ErrorCodeParameterInvalidStringBlank            ErrorCode = "parameter_invalid_string_blank"
	ErrorCodeParameterInvalidStringEmpty            ErrorCode = "parameter_invalid_string_empty"
	ErrorCodeParameterMissing                       ErrorCode = "parameter_missing"
	ErrorCodeParameterUnknown                       ErrorCode = "parameter_unknown"
	ErrorCodeParametersExclusive                    ErrorCode = "parameters_exclusive"
	ErrorCodePaymentIntentActionRequired            ErrorCode = "payment_intent_action_required"
	ErrorCodePaymentIntentAuthenticationFailure     ErrorCode = "payment_intent_authentication_failure"
	ErrorCodePaymentIntentIncompatiblePaymentMethod ErrorCode = "payment_intent_incompatible_payment_method"
	ErrorCodePaymentIntentInvalidParameter          ErrorCode = "payment_intent_invalid_parameter"
	ErrorCodePaymentIntentMandateInvalid            ErrorCode = "payment_intent_mandate_invalid"
	ErrorCodePaymentIntentPaymentAttemptExpired     ErrorCode = "payment_intent_payment_attempt_expired"
	ErrorCodePaymentIntentPaymentAttemptFailed      ErrorCode = "payment_intent_payment_attempt_failed"
	ErrorCodePaymentIntentUnexpectedState           ErrorCode = "payment_intent_unexpected_state"
	ErrorCodePaymentMethodBankAccountBlocked        ErrorCode = "payment_method_bank_account_blocked"
	ErrorCodePaymentMethodConfigurationFailures     ErrorCode = "payment_method_configuration_failures"
	ErrorCodePaymentMethodCurrencyMismatch          ErrorCode = "payment_method_currency_mismatch"
	ErrorCodePaymentMethodCustomerDecline           ErrorCode = "payment_method_customer_decline"
	ErrorCodePaymentMethodInvalidParameter          ErrorCode = "payment_method_invalid_parameter"
	ErrorCodePaymentMethodInvalidParameterTestmode  ErrorCode = "payment_method_invalid_parameter_testmode"
	ErrorCodePaymentMethodMicrodepositFailed        ErrorCode = "payment_method_microdeposit_failed"
	ErrorCodePaymentMethodNotAvailable              ErrorCode = "payment_method_not_available"
	ErrorCodePaymentMethodProviderDecline           ErrorCode = "payment_method_provider_decline"
	ErrorCodePaymentMethodProviderTimeout           ErrorCode = "payment_method_provider_timeout"
	ErrorCodePaymentMethodUnactivated               ErrorCode = "payment_method_unactivated"
	ErrorCodePaymentMethodUnexpectedState           ErrorCode = "payment_method_unexpected_state"
	ErrorCodePaymentMethodUnsupportedType           ErrorCode = "payment_method_unsupported_type"
	ErrorCodePayoutReconciliationNotReady           ErrorCode = "payout_reconciliation_not_ready"
	ErrorCodePayoutsLimitExceeded                   ErrorCode = "payouts_limit_exceeded"
	ErrorCodePayoutsNotAllowed                      ErrorCode = "payouts_not_allowed"
	ErrorCodePlatformAccountRequired                ErrorCode = "platform_account_required"
	ErrorCodePlatformAPIKeyExpired                  ErrorCode = "platform_api_key_expired"
	ErrorCodePostalCodeInvalid                      ErrorCode = "postal_code_invalid"
	ErrorCodeProcessingError                        ErrorCode = "processing_error"
	ErrorCodeProductInactive                        ErrorCode = "product_inactive"
	ErrorCodeProgressiveOnboardingLimitExceeded     ErrorCode = "progressive_onboarding_limit_exceeded"
	ErrorCodeRateLimit                              ErrorCode = "rate_limit"
	ErrorCodeReferToCustomer                        ErrorCode = "refer_to_customer"
	ErrorCodeRefundDisputedPayment                  ErrorCode = "refund_disputed_payment"
	ErrorCodeResourceAlreadyExists                  ErrorCode = "resource_already_exists"
	ErrorCodeResourceMissing                        ErrorCode = "resource_missing"
	ErrorCodeReturnIntentAlreadyProcessed           ErrorCode = "return_intent_already_processed"
	ErrorCodeRoutingNumberInvalid                   ErrorCode = "routing_number_invalid"
	ErrorCodeSecretKeyRequired                      ErrorCode = "secret_key_required"
	ErrorCodeSEPAUnsupportedAccount                 ErrorCode = "sepa_unsupported_account"
	ErrorCodeSetupAttemptFailed                     ErrorCode = "setup_attempt_failed"
	ErrorCodeSetupIntentAuthenticationFailure       ErrorCode = "setup_intent_authentication_failure"
	ErrorCodeSetupIntentInvalidParameter            ErrorCode = "setup_intent_invalid_parameter"
	ErrorCodeSetupIntentMandateInvalid              ErrorCode = "setup_intent_mandate_invalid"
	ErrorCodeSetupIntentSetupAttemptExpired         ErrorCode = "setup_intent_setup_attempt_expired"
	ErrorCodeSetupIntentUnexpectedState             ErrorCode = "setup_intent_unexpected_state"
	ErrorCodeShippingAddressInvalid                 ErrorCode = "shipping_address_invalid"
	ErrorCodeShippingCalculationFailed              ErrorCode = "shipping_calculation_failed"
	ErrorCodeSkuInactive                            ErrorCode = "sku_inactive"
	ErrorCodeStateUnsupported                       ErrorCode = "state_unsupported"
	ErrorCodeStatusTransitionInvalid                ErrorCode = "status_transition_invalid"
	ErrorCodeStripeTaxInactive                      ErrorCode = "stripe_tax_inactive"
	ErrorCodeTaxIDInvalid                           ErrorCode = "tax_id_invalid"
	ErrorCodeTaxesCalculationFailed                 ErrorCode = "taxes_calculation_failed"
	ErrorCodeTerminalLocationCountryUnsupported     ErrorCode = "terminal_location_country_unsupported"
	ErrorCodeTerminalReaderBusy                     ErrorCode = "terminal_reader_busy"
	ErrorCodeTerminalReaderHardwareFault            ErrorCode = "terminal_reader_hardware_fault"
	ErrorCodeTerminalReaderOffline                  ErrorCode = "terminal_reader_offline"
	ErrorCodeTerminalReaderTimeout                  ErrorCode = "terminal_reader_timeout"
	ErrorCodeTestmodeChargesOnly                    ErrorCode = "testmode_charges_only"
	ErrorCodeTlsVersionUnsupported                  ErrorCode = "tls_version_unsupported"
	ErrorCodeTokenAlreadyUsed                       ErrorCode = "token_already_used"
	ErrorCodeTokenCardNetworkInvalid                ErrorCode = "token_card_network_invalid"
	ErrorCodeTokenInUse                             ErrorCode = "token_in_use"
	ErrorCodeTransfersNotAllowed                    ErrorCode = "transfers_not_allowed"
	ErrorCodeURLInvalid                             ErrorCode = "url_invalid"
	ErrorCodeUnknown                                ErrorCode = "unknown"
)

var errorCodes = NewEnumSet("error.code",
	ErrorCodeAccountClosed,
	ErrorCodeAccountCountryInvalidAddress,
	ErrorCodeAccountInformationMismatch,
	ErrorCodeAccountInvalid,
	ErrorCodeAccountNumberInvalid,
	ErrorCodeAcssDebitSessionIncomplete,
	ErrorCodeAlipayUpgradeRequired,
	ErrorCodeAmountTooLarge,
	ErrorCodeAmountTooSmall,
	ErrorCodeAPIKeyExpired,
	ErrorCodeApplicationFeesNotAllowed,
	ErrorCodeAuthenticationRequired,
	ErrorCodeBalanceInsufficient,
	ErrorCodeBalanceInvalidParameter,
	ErrorCodeBankAccountBadRoutingNumbers,
	ErrorCodeBankAccountDeclined,
	ErrorCodeBankAccountExists,
	ErrorCodeBankAccountRestricted,
	ErrorCodeBankAccountUnusable,
	ErrorCodeBankAccountUnverified,
	ErrorCodeBankAccountVerificationFailed,
	ErrorCodeBillingInvalidMandate,
	ErrorCodeBillingPolicyRemoteFunctionTimeout,
	ErrorCodeBillingPolicyRemoteFunctionUnreachable,
	ErrorCodeBitcoinUpgradeRequired,
	ErrorCodeCaptureChargeAuthorizationExpired,
	ErrorCodeCaptureUnauthorizedPayment,
	ErrorCodeCardDeclineRateLimitExceeded,
	ErrorCodeCardDeclined,
	ErrorCodeCardholderPhoneNumberRequired,
	ErrorCodeChargeAlreadyCaptured,
	ErrorCodeChargeAlreadyRefunded,
	ErrorCodeChargeDisputed,
	ErrorCodeChargeExceedsSourceLimit,
	ErrorCodeChargeExpiredForCapture,
	ErrorCodeChargeInvalidParameter,
	ErrorCodeChargeNotRefundable,
	ErrorCodeClearingCodeUnsupported,
	ErrorCodeCountryCodeInvalid,
	ErrorCodeCountryUnsupported,
	ErrorCodeCouponExpired,
	ErrorCodeCustomerMaxPaymentMethods,
	ErrorCodeCustomerMaxSubscriptions,
	ErrorCodeCustomerTaxLocationInvalid,
	ErrorCodeDebitNotAuthorized,
	ErrorCodeEmailInvalid,
	ErrorCodeExpiredCard,
	ErrorCodeFinancialConnectionsAccountInactive,
	ErrorCodeForwardingAPIInactive,
	ErrorCodeForwardingAPIInvalidParameter,
	ErrorCodeForwardingAPIUpstreamConnectionError,
	ErrorCodeForwardingAPIUpstreamConnectionTimeout,
	ErrorCodeIdempotencyKeyInUse,
	ErrorCodeIncorrectAddress,
	ErrorCodeIncorrectCVC,
	ErrorCodeIncorrectNumber,
	ErrorCodeIncorrectZip,
	ErrorCodeInstantPayoutsConfigDisabled,
	ErrorCodeInstantPayoutsCurrencyDisabled,
	ErrorCodeInstantPayoutsLimitExceeded,
	ErrorCodeInstantPayoutsUnsupported,
	ErrorCodeInsufficientFunds,
	ErrorCodeIntentInvalidState,
	ErrorCodeIntentVerificationMethodMissing,
	ErrorCodeInvalidCardType,
	ErrorCodeInvalidCharacters,
	ErrorCodeInvalidChargeAmount,
	ErrorCodeInvalidCVC,
	ErrorCodeInvalidExpiryMonth,
	ErrorCodeInvalidExpiryYear,
	ErrorCodeInvalidNumber,
	ErrorCodeInvalidSourceUsage,
	ErrorCodeInvalidTaxLocation,
	ErrorCodeInvoiceNoCustomerLineItems,
	ErrorCodeInvoiceNoPaymentMethodTypes,
	ErrorCodeInvoiceNoSubscriptionLineItems,
	ErrorCodeInvoiceNotEditable,
	ErrorCodeInvoiceOnBehalfOfNotEditable,
	ErrorCodeInvoicePaymentIntentRequiresAction,
	ErrorCodeInvoiceUpcomingNone,
	ErrorCodeLivemodeMismatch,
	ErrorCodeLockTimeout,
	ErrorCodeMissing,
	ErrorCodeNoAccount,
	ErrorCodeNotAllowedOnStandardAccount,
	ErrorCodeOutOfInventory,
	ErrorCodeOwnershipDeclarationNotAllowed,
	ErrorCodeParameterInvalidEmpty,
	ErrorCodeParameterInvalidInteger,
	ErrorCodeParameterInvalidStringBlank,
	ErrorCodeParameterInvalidStringEmpty,
	ErrorCodeParameterMissing,
	ErrorCodeParameterUnknown,
	ErrorCodeParametersExclusive,
	ErrorCodePaymentIntentActionRequired,
	ErrorCodePaymentIntentAuthenticationFailure,
	ErrorCodePaymentIntentIncompatiblePaymentMethod,
	ErrorCodePaymentIntentInvalidParameter,
	ErrorCodePaymentIntentMandateInvalid,
	ErrorCodePaymentIntentPaymentAttemptExpired,
	ErrorCodePaymentIntentPaymentAttemptFailed,
	ErrorCodePaymentIntentUnexpectedState,
	ErrorCodePaymentMethodBankAccountBlocked,
	ErrorCodePaymentMethodConfigurationFailures,
	ErrorCodePaymentMethodCurrencyMismatch,
	ErrorCodePaymentMethodCustomerDecline,
	ErrorCodePaymentMethodInvalidParameter,
	ErrorCodePaymentMethodInvalidParameterTestmode,
	ErrorCodePaymentMethodMicrodepositFailed,
	ErrorCodePaymentMethodNotAvailable,
	ErrorCodePaymentMethodProviderDecline,
	ErrorCodePaymentMethodProviderTimeout,
	ErrorCodePaymentMethodUnactivated,
	ErrorCodePaymentMethodUnexpectedState,
	ErrorCodePaymentMethodUnsupportedType,
	ErrorCodePayoutReconciliationNotReady,
	ErrorCodePayoutsLimitExceeded,
	ErrorCodePayoutsNotAllowed,
	ErrorCodePlatformAccountRequired,
	ErrorCodePlatformAPIKeyExpired,
	ErrorCodePostalCodeInvalid,
	ErrorCodeProcessingError,
	ErrorCodeProductInactive,
	ErrorCodeProgressiveOnboardingLimitExceeded,
	ErrorCodeRateLimit,
	ErrorCodeReferToCustomer,
	ErrorCodeRefundDisputedPayment,
	ErrorCodeResourceAlreadyExists,
	ErrorCodeResourceMissing,
	ErrorCodeReturnIntentAlreadyProcessed,
	ErrorCodeRoutingNumberInvalid,
	ErrorCodeSecretKeyRequired,
	ErrorCodeSEPAUnsupportedAccount,
	ErrorCodeSetupAttemptFailed,
	ErrorCodeSetupIntentAuthenticationFailure,
	ErrorCodeSetupIntentInvalidParameter,
	ErrorCodeSetupIntentMandateInvalid,
	ErrorCodeSetupIntentSetupAttemptExpired,
	ErrorCodeSetupIntentUnexpectedState,
	ErrorCodeShippingAddressInvalid,
	ErrorCodeShippingCalculationFailed,
	ErrorCodeSkuInactive,
	ErrorCodeStateUnsupported,
	ErrorCodeStatusTransitionInvalid,
	ErrorCodeStripeTaxInactive,
	ErrorCodeTaxIDInvalid,
	ErrorCodeTaxesCalculationFailed,
	ErrorCodeTerminalLocationCountryUnsupported,
	ErrorCodeTerminalReaderBusy,
	ErrorCodeTerminalReaderHardwareFault,
	ErrorCodeTerminalReaderOffline,
	ErrorCodeTerminalReaderTimeout,
	ErrorCodeTestmodeChargesOnly,
	ErrorCodeTlsVersionUnsupported,
	ErrorCodeTokenAlreadyUsed,
	ErrorCodeTokenCardNetworkInvalid,
	ErrorCodeTokenInUse,
	ErrorCodeTransfersNotAllowed,
	ErrorCodeURLInvalid,
	ErrorCodeUnknown,
)

// Known reports whether the ErrorCode is one of the codes in this package.
func (c ErrorCode) Known() bool { return errorCodes.Known(c) }

func (c *ErrorCode) UnmarshalText(text []byte) error { return errorCodes.UnmarshalOpen(c, text) }
